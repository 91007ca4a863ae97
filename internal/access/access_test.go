package access_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/frahmantamala/hr-management/internal/access"
	accessPostgres "github.com/frahmantamala/hr-management/internal/access/postgres"
	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/identity"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/sqlitetest"
	"github.com/frahmantamala/hr-management/internal/core/events"
	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

func TestAccess(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Access Suite")
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

var _ = Describe("Access", func() {
	var (
		db      *gorm.DB
		bus     *events.EventBus
		router  chi.Router
		changes *atomic.Int32
		perms   []identity.AuthPermission
		hrGroup identity.AuthGroup
	)

	BeforeEach(func() {
		var err error
		db, err = sqlitetest.Open()
		Expect(err).NotTo(HaveOccurred())

		slogger := slog.New(slog.NewTextHandler(io.Discard, nil))
		bus = events.NewEventBus(slogger)
		counter := new(atomic.Int32)
		changes = counter
		bus.Subscribe(events.EventTypeGroupPermissionsChanged, func(context.Context, events.Event) error {
			counter.Add(1)
			return nil
		})
		DeferCleanup(bus.Wait)

		h := access.NewHandler(transport.NewBaseHandler(slogger),
			access.NewService(accessPostgres.NewAccessRepository(db), bus, slogger))
		router = chi.NewRouter()
		router.Get("/authgroup", h.ListGroups)
		router.Post("/authgroup", h.CreateGroup)
		router.Get("/authgroup/{id}", h.GetGroup)
		router.Put("/authgroup/{id}", h.UpdateGroup)
		router.Delete("/authgroup/{id}", h.DeleteGroup)
		router.Post("/authgroup/{id}/permissions", h.Grant)
		router.Delete("/authgroup/{id}/permissions", h.Revoke)
		router.Get("/permissions", h.ListPermissions)
		router.Get("/permissions_user_group", h.ListMembers)

		perms = []identity.AuthPermission{
			{Name: "Can view employees", Codename: "view_all_employees"},
			{Name: "Can create employee", Codename: "create_employee"},
			{Name: "Can view payments", Codename: "view_all_payments"},
		}
		Expect(db.Create(&perms).Error).To(Succeed())

		hrGroup = identity.AuthGroup{Name: "HR"}
		Expect(db.Create(&hrGroup).Error).To(Succeed())
		Expect(db.Create(&identity.AuthGroupPermission{GroupID: hrGroup.ID, PermissionID: perms[0].ID}).Error).To(Succeed())
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
		return rec
	}

	path := func(id int64, suffix string) string {
		return "/authgroup/" + itoa(id) + suffix
	}

	group := func(rec *httptest.ResponseRecorder) access.Group {
		var g access.Group
		Expect(json.Unmarshal(rec.Body.Bytes(), &g)).To(Succeed())
		return g
	}

	published := func() int32 {
		bus.Wait()
		return changes.Load()
	}

	Describe("Groups", func() {
		It("should list groups with their permissions", func() {
			empty := identity.AuthGroup{Name: "Guests"}
			Expect(db.Create(&empty).Error).To(Succeed())

			rec := do(http.MethodGet, "/authgroup", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			var out access.GroupsResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(Succeed())
			Expect(out.TotalCount).To(Equal(int64(2)))
			Expect(out.AuthGroups[0].Name).To(Equal("Guests"))
			Expect(out.AuthGroups[0].Permissions).To(BeEmpty())
			Expect(out.AuthGroups[1].Permissions).To(HaveLen(1))
			Expect(out.AuthGroups[1].Permissions[0].Codename).To(Equal("view_all_employees"))
		})

		It("should create, rename and delete a group", func() {
			rec := do(http.MethodPost, "/authgroup", `{"name":"  Finance "}`)
			Expect(rec.Code).To(Equal(http.StatusCreated))
			var created access.CreatedResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &created)).To(Succeed())
			Expect(created.ID).To(BeNumerically(">", hrGroup.ID))

			Expect(do(http.MethodPut, path(created.ID, ""), `{"name":"Accounting"}`).Code).To(Equal(http.StatusOK))
			g := group(do(http.MethodGet, path(created.ID, ""), ""))
			Expect(g.Name).To(Equal("Accounting"))
			Expect(g.Permissions).To(BeEmpty())

			Expect(do(http.MethodDelete, path(created.ID, ""), "").Code).To(Equal(http.StatusOK))
			Expect(do(http.MethodGet, path(created.ID, ""), "").Code).To(Equal(http.StatusNotFound))
			Expect(published()).To(Equal(int32(3)))
		})

		It("should answer 404 for unknown groups and 400 for a blank name", func() {
			Expect(do(http.MethodPut, "/authgroup/999", `{"name":"x"}`).Code).To(Equal(http.StatusNotFound))
			Expect(do(http.MethodDelete, "/authgroup/999", "").Code).To(Equal(http.StatusNotFound))
			Expect(do(http.MethodGet, "/authgroup/abc", "").Code).To(Equal(http.StatusBadRequest))

			rec := do(http.MethodPost, "/authgroup", `{"name":"   "}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("name is required"))
			Expect(published()).To(BeZero())
		})

		It("should drop grants and memberships with the group", func() {
			Expect(db.Create(&identity.AuthUserGroup{UserID: 7, GroupID: hrGroup.ID}).Error).To(Succeed())

			Expect(do(http.MethodDelete, path(hrGroup.ID, ""), "").Code).To(Equal(http.StatusOK))

			var n int64
			Expect(db.Model(&identity.AuthGroupPermission{}).Count(&n).Error).To(Succeed())
			Expect(n).To(BeZero())
			Expect(db.Model(&identity.AuthUserGroup{}).Count(&n).Error).To(Succeed())
			Expect(n).To(BeZero())
		})
	})

	Describe("Grants", func() {
		It("should add permissions without duplicating held ones", func() {
			body := `{"permission_ids":[` + itoa(perms[0].ID) + `,` + itoa(perms[1].ID) + `]}`
			rec := do(http.MethodPost, path(hrGroup.ID, "/permissions"), body)
			Expect(rec.Code).To(Equal(http.StatusOK))

			g := group(rec)
			codenames := make([]string, 0, len(g.Permissions))
			for _, p := range g.Permissions {
				codenames = append(codenames, p.Codename)
			}
			Expect(codenames).To(ConsistOf("view_all_employees", "create_employee"))
			Expect(published()).To(Equal(int32(1)))
		})

		It("should remove permissions", func() {
			rec := do(http.MethodDelete, path(hrGroup.ID, "/permissions"), `{"permission_ids":[`+itoa(perms[0].ID)+`]}`)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(group(rec).Permissions).To(BeEmpty())
			Expect(published()).To(Equal(int32(1)))
		})

		It("should reject unknown or empty permission ids", func() {
			rec := do(http.MethodPost, path(hrGroup.ID, "/permissions"), `{"permission_ids":[4242]}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("unknown permissions: 4242"))

			rec = do(http.MethodPost, path(hrGroup.ID, "/permissions"), `{"permission_ids":[]}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			rec = do(http.MethodPost, "/authgroup/999/permissions", `{"permission_ids":[`+itoa(perms[0].ID)+`]}`)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(published()).To(BeZero())
		})
	})

	Describe("Permissions", func() {
		It("should list every codename and search them", func() {
			rec := do(http.MethodGet, "/permissions", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			var out struct {
				Data       []access.Permission `json:"data"`
				TotalCount int64               `json:"total_count"`
			}
			Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(Succeed())
			Expect(out.TotalCount).To(Equal(int64(3)))
			Expect(out.Data[0].Codename).To(Equal("create_employee"))

			rec = do(http.MethodGet, "/permissions?global_search=PAYMENT", "")
			Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(Succeed())
			Expect(out.TotalCount).To(Equal(int64(1)))
			Expect(out.Data[0].Codename).To(Equal("view_all_payments"))
		})

		It("should list employees with their groups and grants", func() {
			for _, name := range []string{"Zoe", "Ada"} {
				u := identity.AuthUser{Username: name, FirstName: name, LastName: "Test", Email: name + "@example.com", DateJoined: time.Now()}
				Expect(db.Create(&u).Error).To(Succeed())
				Expect(db.Create(&hr.Employee{AuthUserID: u.ID, Phone: "1", Src: name + ".png", BirthDate: datatype.Today()}).Error).To(Succeed())
				if name == "Zoe" {
					Expect(db.Create(&identity.AuthUserGroup{UserID: u.ID, GroupID: hrGroup.ID}).Error).To(Succeed())
				}
			}

			rec := do(http.MethodGet, "/permissions_user_group", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			var out access.MembersResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(Succeed())
			Expect(out.TotalCount).To(Equal(int64(2)))
			Expect(out.Employees[0].Name).To(Equal("Ada Test"))
			Expect(out.Employees[0].Groups).To(BeEmpty())
			Expect(out.Employees[1].Src).To(Equal("Zoe.png"))
			Expect(out.Employees[1].Groups).To(HaveLen(1))
			Expect(out.Employees[1].Groups[0].Permissions[0].Codename).To(Equal("view_all_employees"))
		})
	})
})
