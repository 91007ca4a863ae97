package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/frahmantamala/hr-management/internal/auth"
	authPostgres "github.com/frahmantamala/hr-management/internal/auth/postgres"
	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/identity"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/sqlitetest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

func TestAuthPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Postgres Suite")
}

var _ = Describe("Auth Repository", func() {
	var (
		db   *gorm.DB
		repo auth.RepositoryAPI
		ctx  context.Context
		emp  *hr.Employee
		user *identity.AuthUser
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		db, err = sqlitetest.Open()
		Expect(err).NotTo(HaveOccurred())
		repo = authPostgres.NewAuthRepository(db)

		user = &identity.AuthUser{
			Username:   "ana",
			Password:   "hash",
			FirstName:  "Ana",
			LastName:   "Lopez",
			Email:      "Ana@Example.com",
			IsActive:   true,
			DateJoined: time.Now(),
		}
		Expect(db.Create(user).Error).To(Succeed())

		emp = &hr.Employee{AuthUserID: user.ID, Phone: "555", Src: "img.png", BirthDate: datatype.NewDate(time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC))}
		Expect(db.Create(emp).Error).To(Succeed())

		perms := []identity.AuthPermission{
			{Name: "Can view employee", Codename: "view_employee"},
			{Name: "Can create employee", Codename: "create_employee"},
			{Name: "Can delete employee", Codename: "delete_employee"},
		}
		Expect(db.Create(&perms).Error).To(Succeed())

		group := &identity.AuthGroup{Name: "Recruiter"}
		Expect(db.Create(group).Error).To(Succeed())
		Expect(db.Create(&identity.AuthUserGroup{UserID: user.ID, GroupID: group.ID}).Error).To(Succeed())
		Expect(db.Create(&identity.AuthGroupPermission{GroupID: group.ID, PermissionID: perms[1].ID}).Error).To(Succeed())
		Expect(db.Create(&identity.AuthUserPermission{UserID: user.ID, PermissionID: perms[0].ID}).Error).To(Succeed())
	})

	Describe("FindCredentialsByEmail", func() {
		It("should match the email case-insensitively", func() {
			creds, err := repo.FindCredentialsByEmail(ctx, "ana@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(creds).NotTo(BeNil())
			Expect(creds.EmployeeID).To(Equal(emp.ID))
			Expect(creds.UserID).To(Equal(user.ID))
			Expect(creds.PasswordHash).To(Equal("hash"))
			Expect(creds.IsActive).To(BeTrue())
		})

		It("should return nil for an unknown email", func() {
			creds, err := repo.FindCredentialsByEmail(ctx, "ghost@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(creds).To(BeNil())
		})

		It("should ignore soft-deleted employees", func() {
			Expect(db.Delete(emp).Error).To(Succeed())
			creds, err := repo.FindCredentialsByEmail(ctx, "ana@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(creds).To(BeNil())
		})
	})

	Describe("PermissionCodenames", func() {
		It("should union direct and group grants", func() {
			codenames, err := repo.PermissionCodenames(ctx, emp.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(codenames).To(Equal([]string{"create_employee", "view_employee"}))
		})

		It("should grant every codename to superusers", func() {
			Expect(db.Model(user).Update("is_superuser", true).Error).To(Succeed())
			codenames, err := repo.PermissionCodenames(ctx, emp.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(codenames).To(ConsistOf("create_employee", "delete_employee", "view_employee"))
		})
	})

	Describe("TouchLastLogin", func() {
		It("should store the login time", func() {
			Expect(repo.TouchLastLogin(ctx, user.ID, time.Now())).To(Succeed())

			var reloaded identity.AuthUser
			Expect(db.First(&reloaded, user.ID).Error).To(Succeed())
			Expect(reloaded.LastLogin).NotTo(BeNil())
		})
	})
})
