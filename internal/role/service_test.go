package role_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/sqlitetest"
	"github.com/frahmantamala/hr-management/internal/role"
	rolePostgres "github.com/frahmantamala/hr-management/internal/role/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

func TestRole(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Role Suite")
}

var _ = Describe("Role Service", func() {
	var (
		db       *gorm.DB
		service  *role.Service
		ctx      context.Context
		dept     hr.Department
		security hr.TrainingType
		gdpr     hr.TrainingType
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		db, err = sqlitetest.Open()
		Expect(err).NotTo(HaveOccurred())
		service = role.NewService(rolePostgres.NewRoleRepository(db), slog.New(slog.NewTextHandler(io.Discard, nil)))

		dept = hr.Department{Name: "Engineering"}
		Expect(db.Omit("Roles").Create(&dept).Error).To(Succeed())
		security = hr.TrainingType{Name: "Security", Description: "OWASP"}
		gdpr = hr.TrainingType{Name: "GDPR", Description: "Privacy"}
		Expect(db.Create(&security).Error).To(Succeed())
		Expect(db.Create(&gdpr).Error).To(Succeed())
	})

	newDTO := func(name string, trainings ...string) role.RoleDTO {
		return role.RoleDTO{
			DepartmentID:  dept.ID,
			AuthGroupID:   1,
			RoleName:      name,
			HexColor:      "#336699",
			TrainingTypes: trainings,
		}
	}

	It("should create a role with its training types and department name", func() {
		r, err := service.Create(ctx, newDTO("Backend", security.ID, security.ID))
		Expect(err).NotTo(HaveOccurred())
		Expect(r.DepartmentName).To(Equal("Engineering"))
		Expect(r.TrainingTypes).To(HaveLen(1))
		Expect(r.TrainingTypes[0].Name).To(Equal("Security"))
	})

	It("should replace training types on update", func() {
		r, err := service.Create(ctx, newDTO("Backend", security.ID))
		Expect(err).NotTo(HaveOccurred())

		updated, err := service.Update(ctx, r.ID, newDTO("Backend Lead", gdpr.ID))
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.RoleName).To(Equal("Backend Lead"))
		Expect(updated.TrainingTypes).To(HaveLen(1))
		Expect(updated.TrainingTypes[0].ID).To(Equal(gdpr.ID))

		var links int64
		Expect(db.Model(&hr.TrainingTypeRole{}).Where("id_role = ?", r.ID).Count(&links).Error).To(Succeed())
		Expect(links).To(Equal(int64(1)))
	})

	It("should reject an unknown department or training type", func() {
		dto := newDTO("Backend")
		dto.DepartmentID = "00000000-0000-0000-0000-000000000000"
		_, err := service.Create(ctx, dto)
		appErr, ok := errors.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.StatusCode).To(Equal(400))

		_, err = service.Create(ctx, newDTO("Backend", "11111111-1111-1111-1111-111111111111"))
		appErr, ok = errors.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.StatusCode).To(Equal(400))
	})

	It("should validate the payload", func() {
		_, err := service.Create(ctx, role.RoleDTO{RoleName: "x", HexColor: "red"})
		appErr, ok := errors.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.GetDetailedMessage()).To(ContainSubstring("id_department is required"))
		Expect(appErr.GetDetailedMessage()).To(ContainSubstring("hex_color"))
	})

	It("should search and page the list", func() {
		for _, name := range []string{"Backend", "Frontend", "Data"} {
			_, err := service.Create(ctx, newDTO(name))
			Expect(err).NotTo(HaveOccurred())
		}

		result, err := service.List(ctx, query.ListParams{Limit: 1, GlobalSearch: "END"})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.TotalCount).To(Equal(int64(2)))
		Expect(result.Data).To(HaveLen(1))
		Expect(result.Data[0].RoleName).To(Equal("Backend"))
	})

	It("should soft delete", func() {
		r, err := service.Create(ctx, newDTO("Backend"))
		Expect(err).NotTo(HaveOccurred())

		Expect(service.Delete(ctx, r.ID)).To(Succeed())
		_, err = service.Get(ctx, r.ID)
		appErr, ok := errors.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.StatusCode).To(Equal(404))

		Expect(service.Delete(ctx, r.ID)).NotTo(Succeed())
	})
})
