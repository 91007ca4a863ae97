package mongodb

import "go.mongodb.org/mongo-driver/v2/bson"

const (
	datePattern    = `^(\d{4})-(\d{2})-(\d{2})$`
	clockPattern   = `^(\d{2}):(\d{2})$`
	secondsPattern = `^(\d{2}):(\d{2}):(\d{2})$`
)

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func str(pattern, description string) bson.M {
	m := bson.M{"bsonType": "string", "description": description}
	if pattern != "" {
		m["pattern"] = pattern
	}
	return m
}

func employeeID() bson.M {
	return str("", "id_employee must be a string holding a valid UUID")
}

func attendanceSchema() bson.M {
	return bson.M{"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"id_employee", "date", "sessions"},
		"properties": bson.M{
			"id_employee": employeeID(),
			"date":        str(datePattern, "date must use yyyy-MM-dd"),
			"sessions": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "object",
					"required": bson.A{"checkin"},
					"properties": bson.M{
						"checkin": str(secondsPattern, "checkin must use HH:mm:ss"),
						"checkout": bson.M{
							"bsonType":    bson.A{"string", "null"},
							"pattern":     secondsPattern,
							"description": "checkout must use HH:mm:ss",
						},
					},
				},
			},
		},
	}}
}

func extraHoursSchema() bson.M {
	return bson.M{"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"id_employee", "date", "start", "end"},
		"properties": bson.M{
			"id_employee": employeeID(),
			"date":        str(datePattern, "date must use yyyy-MM-dd"),
			"start":       str(secondsPattern, "start must use HH:mm:ss"),
			"end":         str(secondsPattern, "end must use HH:mm:ss"),
		},
	}}
}

func scheduleSchema() bson.M {
	days := bson.M{}
	for _, d := range weekdays {
		days[d] = bson.M{
			"bsonType": "object",
			"required": bson.A{"start", "end"},
			"properties": bson.M{
				"start": str(clockPattern, "start must use HH:mm"),
				"end":   str(clockPattern, "end must use HH:mm"),
			},
		}
	}
	return bson.M{"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"id_employee", "workSchedule"},
		"properties": bson.M{
			"id_employee":  employeeID(),
			"workSchedule": bson.M{"bsonType": "object", "properties": days},
		},
	}}
}
