package postgres

import (
	"context"
	"strings"

	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/identity"
	"github.com/frahmantamala/hr-management/internal/employee"
	"gorm.io/gorm"
)

const (
	latestContract = `LEFT JOIN contract c ON c.id_contract = (
		SELECT c2.id_contract FROM contract c2
		WHERE c2.id_employee = e.id_employee AND c2.deleted_at IS NULL
		ORDER BY c2.created_at DESC LIMIT 1)`
	latestState = `LEFT JOIN contract_state_contract csc ON csc.id_contract_state_contract = (
		SELECT x.id_contract_state_contract FROM contract_state_contract x
		WHERE x.id_contract = c.id_contract AND x.deleted_at IS NULL
		ORDER BY x.created_at DESC LIMIT 1)`
	latestSalary = `LEFT JOIN salary_history sh ON sh.id_salary_history = (
		SELECT s2.id_salary_history FROM salary_history s2
		WHERE s2.id_contract = c.id_contract AND s2.deleted_at IS NULL
		ORDER BY s2.created_at DESC LIMIT 1)`

	fullName = "u.first_name || ' ' || u.last_name"

	listColumns = "e.id_employee AS id, " + fullName + " AS employee_name, u.email, " +
		"r.role_name, r.hex_color AS role_hex_color, d.name AS department_name, " +
		"cs.state AS state_name, cs.icon AS state_icon, cs.hex_color AS state_hex_color"

	contractColumns = "c.id_contract AS id, sh.base_salary, sh.extra_hour_rate, r.role_name, " +
		"d.name AS department_name, c.created_at, ct.contract_type_name, ct.description, " +
		"ct.benefits_eligible, ct.overtime_eligible, ct.termination_notice_period, " +
		"cs.state AS contract_state_name, cs.icon AS contract_state_icon, cs.hex_color AS contract_state_color"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) List(ctx context.Context, f employee.ListFilter) ([]employee.ListRow, int64, error) {
	base := r.db.WithContext(ctx).Table("employees AS e").
		Joins("JOIN auth_user u ON u.id = e.id_auth_user").
		Joins(latestContract).
		Joins("LEFT JOIN roles r ON r.id_role = c.id_role").
		Joins("LEFT JOIN departments d ON d.id_department = r.id_department").
		Joins(latestState).
		Joins("LEFT JOIN contract_state cs ON cs.id_contract_state = csc.id_contract_state").
		Where("e.deleted_at IS NULL")

	if f.Name != "" {
		base = base.Where("LOWER("+fullName+") LIKE ?", "%"+lower(f.Name)+"%")
	}
	if f.DepartmentID != "" {
		base = base.Where("d.id_department = ?", f.DepartmentID)
	}
	if f.RoleID != "" {
		base = base.Where("r.id_role = ?", f.RoleID)
	}
	if f.StatusID != "" {
		base = base.Where("cs.id_contract_state = ?", f.StatusID)
	}
	base = f.Search(base, fullName, "u.email", "r.role_name", "d.name")

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []employee.ListRow
	err := f.Page(base.Select(listColumns).Order(f.OrderClause(employee.Sorting)).Order("e.id_employee")).
		Scan(&rows).Error
	return rows, total, err
}

func (r *EmployeeRepository) Contracts(ctx context.Context, employeeID string, f employee.ContractFilter) ([]employee.ContractRow, int64, error) {
	base := r.db.WithContext(ctx).Table("contract AS c").
		Joins("JOIN contract_type ct ON ct.id_contract_type = c.id_contract_type").
		Joins("LEFT JOIN roles r ON r.id_role = c.id_role").
		Joins("LEFT JOIN departments d ON d.id_department = r.id_department").
		Joins(latestSalary).
		Joins(latestState).
		Joins("LEFT JOIN contract_state cs ON cs.id_contract_state = csc.id_contract_state").
		Where("c.id_employee = ? AND c.deleted_at IS NULL", employeeID)

	for col, v := range map[string]string{
		"ct.contract_type_name": f.ContractTypeName,
		"cs.state":              f.ContractStateName,
		"r.role_name":           f.RoleName,
		"d.name":                f.DepartmentName,
	} {
		if v != "" {
			base = base.Where("LOWER("+col+") LIKE ?", "%"+lower(v)+"%")
		}
	}
	base = f.Search(base, "ct.contract_type_name", "cs.state", "r.role_name", "d.name")

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []employee.ContractRow
	err := f.Page(base.Select(contractColumns).Order(f.OrderClause(employee.ContractSorting))).
		Scan(&rows).Error
	return rows, total, err
}

func (r *EmployeeRepository) GetEmployee(ctx context.Context, id string) (*hr.Employee, error) {
	var e hr.Employee
	found, err := first(r.db.WithContext(ctx).Where("id_employee = ?", id), &e)
	if err != nil || !found {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) UsernameTaken(ctx context.Context, username string, exceptUserID int64) (bool, error) {
	return r.userExists(ctx, "LOWER(username) = LOWER(?)", username, exceptUserID)
}

func (r *EmployeeRepository) EmailTaken(ctx context.Context, email string, exceptUserID int64) (bool, error) {
	return r.userExists(ctx, "LOWER(email) = LOWER(?)", email, exceptUserID)
}

func (r *EmployeeRepository) userExists(ctx context.Context, cond, value string, exceptUserID int64) (bool, error) {
	q := r.db.WithContext(ctx).Model(&identity.AuthUser{}).Where(cond, value)
	if exceptUserID > 0 {
		q = q.Where("id <> ?", exceptUserID)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *EmployeeRepository) GroupExists(ctx context.Context, groupID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&identity.AuthGroup{}).Where("id = ?", groupID).Count(&n).Error
	return n > 0, err
}

// Create writes the onboarding rows in dependency order inside one transaction.
func (r *EmployeeRepository) Create(ctx context.Context, o *employee.Onboarding) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o.User).Error; err != nil {
			return err
		}

		o.Employee.AuthUserID = o.User.ID
		if err := tx.Create(o.Employee).Error; err != nil {
			return err
		}
		id := o.Employee.ID

		o.Location.EmployeeID = id
		if err := tx.Create(o.Location).Error; err != nil {
			return err
		}

		if err := tx.Create(&identity.AuthUserGroup{UserID: o.User.ID, GroupID: o.GroupID}).Error; err != nil {
			return err
		}

		if o.Vacation != nil {
			o.Vacation.EmployeeID = id
			if err := tx.Create(o.Vacation).Error; err != nil {
				return err
			}
		}

		if err := createTrainings(tx, id, o.Trainings); err != nil {
			return err
		}

		if o.Contract != nil {
			if err := createContract(tx, id, o.Contract, o.ContractState); err != nil {
				return err
			}
		}

		if o.Salary != nil {
			o.Salary.ContractID = o.Contract.ID
			if err := tx.Create(o.Salary).Error; err != nil {
				return err
			}
		}

		return createCertifications(tx, id, o.Certifications)
	})
}

// Update moves an employee to rev inside one transaction.
func (r *EmployeeRepository) Update(ctx context.Context, rev *employee.Revision) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := map[string]interface{}{
			"username":   rev.Username,
			"first_name": rev.FirstName,
			"last_name":  rev.LastName,
			"email":      rev.Email,
		}
		if rev.PasswordHash != "" {
			user["password"] = rev.PasswordHash
		}
		if err := tx.Model(&identity.AuthUser{}).Where("id = ?", rev.UserID).Updates(user).Error; err != nil {
			return err
		}

		err := tx.Model(&hr.Employee{}).Where("id_employee = ?", rev.EmployeeID).Updates(map[string]interface{}{
			"phone":      rev.Phone,
			"src":        rev.Src,
			"birth_date": rev.BirthDate,
		}).Error
		if err != nil {
			return err
		}

		if err := upsertLocation(tx, rev.EmployeeID, rev.Location); err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", rev.UserID).Delete(&identity.AuthUserGroup{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&identity.AuthUserGroup{UserID: rev.UserID, GroupID: rev.GroupID}).Error; err != nil {
			return err
		}

		err = tx.Where("id_employee = ? AND start_date >= ?", rev.EmployeeID, rev.Today).Delete(&hr.Vacation{}).Error
		if err != nil {
			return err
		}
		if rev.Vacation != nil {
			rev.Vacation.EmployeeID = rev.EmployeeID
			if err := tx.Create(rev.Vacation).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("id_employee = ?", rev.EmployeeID).Delete(&hr.Training{}).Error; err != nil {
			return err
		}
		if err := createTrainings(tx, rev.EmployeeID, rev.Trainings); err != nil {
			return err
		}

		if err := tx.Where("id_employee = ?", rev.EmployeeID).Delete(&hr.Certification{}).Error; err != nil {
			return err
		}
		if err := createCertifications(tx, rev.EmployeeID, rev.Certifications); err != nil {
			return err
		}

		contractID := ""
		if rev.Contract != nil {
			if err := createContract(tx, rev.EmployeeID, rev.Contract, rev.ContractState); err != nil {
				return err
			}
			contractID = rev.Contract.ID
		}

		if rev.Salary == nil {
			return nil
		}
		if contractID == "" {
			var ids []string
			err := tx.Model(&hr.Contract{}).Where("id_employee = ?", rev.EmployeeID).
				Order("created_at DESC").Limit(1).Pluck("id_contract", &ids).Error
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				return errors.NewValidationFieldError("salary", "salary requires a contract", errors.ErrCodeValidationFailed)
			}
			contractID = ids[0]
		}
		rev.Salary.ContractID = contractID
		return tx.Create(rev.Salary).Error
	})
}

func upsertLocation(tx *gorm.DB, employeeID string, loc hr.EmployeeLocation) error {
	var current hr.EmployeeLocation
	found, err := first(tx.Where("id_employee = ?", employeeID), &current)
	if err != nil {
		return err
	}
	if !found {
		loc.EmployeeID = employeeID
		return tx.Create(&loc).Error
	}
	return tx.Model(&current).Updates(map[string]interface{}{
		"address":  loc.Address,
		"city":     loc.City,
		"district": loc.District,
		"country":  loc.Country,
		"zip_code": loc.ZipCode,
	}).Error
}

func createTrainings(tx *gorm.DB, employeeID string, rows []hr.Training) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		rows[i].EmployeeID = employeeID
	}
	return tx.Create(&rows).Error
}

func createCertifications(tx *gorm.DB, employeeID string, rows []hr.Certification) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		rows[i].EmployeeID = employeeID
	}
	return tx.Create(&rows).Error
}

func createContract(tx *gorm.DB, employeeID string, c *hr.Contract, state *hr.ContractStateContract) error {
	c.EmployeeID = employeeID
	if err := tx.Create(c).Error; err != nil {
		return err
	}
	if state == nil {
		return nil
	}
	state.ContractID = c.ID
	return tx.Omit("State").Create(state).Error
}

// GetDetail assembles the nested employee view, or nil when the employee does not exist.
func (r *EmployeeRepository) GetDetail(ctx context.Context, id string) (*employee.Detail, error) {
	db := r.db.WithContext(ctx)

	var e hr.Employee
	found, err := first(db.Where("id_employee = ?", id), &e)
	if err != nil || !found {
		return nil, err
	}

	var u identity.AuthUser
	if _, err := first(db.Where("id = ?", e.AuthUserID), &u); err != nil {
		return nil, err
	}

	d := &employee.Detail{
		ID:             e.ID,
		Username:       u.Username,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		EmployeeName:   u.FirstName + " " + u.LastName,
		Email:          u.Email,
		Phone:          e.Phone,
		Photo:          e.Src,
		BirthDate:      e.BirthDate,
		DateJoined:     u.DateJoined,
		Trainings:      []employee.TrainingDetail{},
		Certifications: []employee.CertificationDetail{},
		Vacations:      []hr.Vacation{},
	}

	var loc hr.EmployeeLocation
	if found, err := first(db.Where("id_employee = ?", id), &loc); err != nil {
		return nil, err
	} else if found {
		d.Location = &employee.Location{
			Address:  loc.Address,
			City:     loc.City,
			District: loc.District,
			Country:  loc.Country,
			ZipCode:  loc.ZipCode,
		}
	}

	var groups []employee.GroupRef
	err = db.Table("auth_group g").Select("g.id, g.name").
		Joins("JOIN auth_user_groups ug ON ug.group_id = g.id").
		Where("ug.user_id = ?", u.ID).Order("g.id").Limit(1).
		Scan(&groups).Error
	if err != nil {
		return nil, err
	}
	if len(groups) > 0 {
		d.Group = &groups[0]
	}

	if d.Contract, err = r.latestContract(db, id); err != nil {
		return nil, err
	}
	if d.Trainings, err = r.trainings(db, id); err != nil {
		return nil, err
	}
	if d.Certifications, err = r.certifications(db, id); err != nil {
		return nil, err
	}
	err = db.Where("id_employee = ?", id).Order("start_date DESC").Find(&d.Vacations).Error
	return d, err
}

func (r *EmployeeRepository) latestContract(db *gorm.DB, employeeID string) (*employee.ContractDetail, error) {
	var c hr.Contract
	found, err := first(db.Where("id_employee = ?", employeeID).Order("created_at DESC"), &c)
	if err != nil || !found {
		return nil, err
	}
	out := &employee.ContractDetail{ID: c.ID, CreatedAt: c.CreatedAt}

	var ct hr.ContractType
	if found, err := first(db.Where("id_contract_type = ?", c.ContractTypeID), &ct); err != nil {
		return nil, err
	} else if found {
		out.ContractType = &ct
	}

	var role hr.Role
	if found, err := first(db.Preload("Department").Where("id_role = ?", c.RoleID), &role); err != nil {
		return nil, err
	} else if found {
		out.Role = &employee.RoleRef{
			ID:          role.ID,
			RoleName:    role.RoleName,
			HexColor:    role.HexColor,
			Description: role.Description,
		}
		if role.Department != nil {
			out.Department = &employee.DepartmentRef{
				ID:          role.Department.ID,
				Name:        role.Department.Name,
				Description: role.Department.Description,
			}
		}
	}

	var state hr.ContractStateContract
	q := db.Preload("State").Where("id_contract = ?", c.ID).Order("created_at DESC")
	if found, err := first(q, &state); err != nil {
		return nil, err
	} else if found && state.State != nil {
		out.State = &employee.StateRef{
			ID:              state.ID,
			ContractStateID: state.ContractStateID,
			StateName:       state.State.State,
			Description:     state.State.Description,
			HexColor:        state.State.HexColor,
			Icon:            state.State.Icon,
		}
	}

	var salary hr.SalaryHistory
	if found, err := first(db.Where("id_contract = ?", c.ID).Order("created_at DESC"), &salary); err != nil {
		return nil, err
	} else if found {
		out.Salary = &salary
	}
	return out, nil
}

type trainingRow struct {
	ID          string
	StartDate   datatype.Date
	EndDate     datatype.Date
	TypeID      string
	Name        string
	Description string
	Hours       *int
}

func (r *EmployeeRepository) trainings(db *gorm.DB, employeeID string) ([]employee.TrainingDetail, error) {
	var rows []trainingRow
	err := db.Table("trainings t").
		Select("t.id_training AS id, t.start_date, t.end_date, tt.id_training_type AS type_id, tt.name, tt.description, tt.hours").
		Joins("JOIN training_types tt ON tt.id_training_type = t.id_training_type").
		Where("t.id_employee = ? AND t.deleted_at IS NULL", employeeID).
		Order("t.start_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]employee.TrainingDetail, 0, len(rows))
	for _, t := range rows {
		out = append(out, employee.TrainingDetail{
			ID:        t.ID,
			StartDate: t.StartDate,
			EndDate:   t.EndDate,
			TrainingType: employee.TrainingTypeRef{
				ID:          t.TypeID,
				Name:        t.Name,
				Description: t.Description,
				Hours:       t.Hours,
			},
		})
	}
	return out, nil
}

type certificationRow struct {
	ID                  string
	IssueDate           datatype.Date
	ExpirationDate      *datatype.Date
	IssuingOrganization string
	TypeID              string
	Name                string
	Description         string
	Icon                string
	HexColor            string
}

func (r *EmployeeRepository) certifications(db *gorm.DB, employeeID string) ([]employee.CertificationDetail, error) {
	var rows []certificationRow
	err := db.Table("certifications c").
		Select("c.id_certification AS id, c.issue_date, c.expiration_date, c.issuing_organization, " +
			"ct.id_certificate_type AS type_id, ct.name, ct.description, ct.icon, ct.hex_color").
		Joins("JOIN certificate_types ct ON ct.id_certificate_type = c.id_certificate_type").
		Where("c.id_employee = ? AND c.deleted_at IS NULL", employeeID).
		Order("c.issue_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]employee.CertificationDetail, 0, len(rows))
	for _, c := range rows {
		out = append(out, employee.CertificationDetail{
			ID:                  c.ID,
			IssueDate:           c.IssueDate,
			ExpirationDate:      c.ExpirationDate,
			IssuingOrganization: c.IssuingOrganization,
			CertificateType: employee.CertificateTypeRef{
				ID:          c.TypeID,
				Name:        c.Name,
				Description: c.Description,
				Icon:        c.Icon,
				HexColor:    c.HexColor,
			},
		})
	}
	return out, nil
}

func first(q *gorm.DB, dst interface{}) (bool, error) {
	err := q.First(dst).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	return err == nil, err
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
