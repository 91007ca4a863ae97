package mongodb_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/frahmantamala/hr-management/internal/attendance"
	attendanceMongo "github.com/frahmantamala/hr-management/internal/attendance/mongodb"
	hrmongo "github.com/frahmantamala/hr-management/internal/mongodb"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func TestAttendanceMongo(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Attendance Mongo Suite")
}

// MONGO_TEST_URI points the suite at an existing server; otherwise a
// throwaway container is started and the suite is skipped without Docker.
var db *mongo.Database

var _ = BeforeSuite(func(ctx SpecContext) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		ctr, err := tcmongo.Run(ctx, "mongo:7")
		if err != nil {
			Skip("mongo container unavailable: " + err.Error())
		}
		DeferCleanup(func() error { return testcontainers.TerminateContainer(ctr) })

		uri, err = ctr.ConnectionString(ctx)
		Expect(err).NotTo(HaveOccurred())
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(func(ctx context.Context) error { return client.Disconnect(ctx) })

	db = client.Database("hr_test_" + uuid.NewString()[:8])
	DeferCleanup(func(ctx context.Context) error { return db.Drop(ctx) })

	lg := slog.New(slog.NewTextHandler(io.Discard, nil))
	Expect(hrmongo.EnsureCollections(ctx, db, lg)).To(Succeed())
}, NodeTimeout(3*time.Minute))

var _ = Describe("AttendanceRepository", func() {
	var (
		ctx      context.Context
		repo     attendance.RepositoryAPI
		svc      *attendance.Service
		employee string
		clock    time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = attendanceMongo.NewAttendanceRepository(db)
		employee = uuid.NewString()
		clock = time.Date(2024, 5, 6, 8, 30, 0, 0, time.Local)
		svc = attendance.NewService(repo, 0, slog.New(slog.NewTextHandler(io.Discard, nil))).
			WithClock(func() time.Time { return clock })
	})

	advance := func(d time.Duration) { clock = clock.Add(d) }

	It("upserts today's record on the first check-in and appends later ones", func() {
		rec, err := svc.CheckIn(ctx, employee)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Date).To(Equal("2024-05-06"))
		Expect(rec.Sessions).To(HaveLen(1))
		Expect(rec.Sessions[0].Checkin).To(Equal("08:30:00"))
		Expect(rec.Sessions[0].Open()).To(BeTrue())

		advance(4 * time.Hour)
		rec, err = svc.CheckIn(ctx, employee)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.Sessions).To(HaveLen(2))

		recs, err := repo.ListByEmployee(ctx, employee)
		Expect(err).NotTo(HaveOccurred())
		Expect(recs).To(HaveLen(1))
	})

	It("closes only the first open session and refuses a checkout with none open", func() {
		_, err := svc.CheckIn(ctx, employee)
		Expect(err).NotTo(HaveOccurred())
		advance(time.Hour)
		_, err = svc.CheckIn(ctx, employee)
		Expect(err).NotTo(HaveOccurred())

		advance(time.Hour)
		rec, err := svc.CheckOut(ctx, employee)
		Expect(err).NotTo(HaveOccurred())
		Expect(*rec.Sessions[0].Checkout).To(Equal("10:30:00"))
		Expect(rec.Sessions[1].Open()).To(BeTrue())

		advance(time.Hour)
		rec, err = svc.CheckOut(ctx, employee)
		Expect(err).NotTo(HaveOccurred())
		Expect(*rec.Sessions[0].Checkout).To(Equal("10:30:00"))
		Expect(*rec.Sessions[1].Checkout).To(Equal("11:30:00"))

		_, err = svc.CheckOut(ctx, employee)
		Expect(err).To(MatchError(ContainSubstring("no open session")))
	})

	It("refuses a checkout before any check-in", func() {
		rec, err := repo.CloseSession(ctx, employee, "2024-05-06", "17:00:00")
		Expect(err).NotTo(HaveOccurred())
		Expect(rec).To(BeNil())
	})

	It("rejects documents that break the collection schema", func() {
		_, err := repo.Insert(ctx, attendance.Record{
			EmployeeID: employee,
			Date:       "06/05/2024",
			Sessions:   []attendance.Session{{Checkin: "08:00:00"}},
		})
		Expect(err).To(HaveOccurred())
	})
})
