package contract_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/frahmantamala/hr-management/internal/contract"
	contractPostgres "github.com/frahmantamala/hr-management/internal/contract/postgres"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/sqlitetest"
	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

func TestContract(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Contract Suite")
}

var _ = Describe("Contract State History", func() {
	var (
		db        *gorm.DB
		router    chi.Router
		active    hr.ContractState
		suspended hr.ContractState
		mine      hr.Contract
		theirs    hr.Contract
		employee  = "0f6b9a10-2f7e-4cf1-8a51-0c2d1f8a9e01"
	)

	BeforeEach(func() {
		var err error
		db, err = sqlitetest.Open()
		Expect(err).NotTo(HaveOccurred())

		slogger := slog.New(slog.NewTextHandler(io.Discard, nil))
		h := contract.NewHandler(transport.NewBaseHandler(slogger),
			contract.NewService(contractPostgres.NewContractRepository(db), slogger))

		router = chi.NewRouter()
		router.Get("/contract_state_contracts", h.List)
		router.Get("/contract_state_contracts/{id}", h.History)
		router.Post("/contract_state_contracts", h.Create)
		router.Put("/contract_state_contracts/{id}", h.Update)
		router.Delete("/contract_state_contracts/{id}", h.Delete)

		active = hr.ContractState{State: "Active", Icon: "check", HexColor: "#00AA00"}
		suspended = hr.ContractState{State: "Suspended", Icon: "pause", HexColor: "#AA0000"}
		Expect(db.Create(&active).Error).To(Succeed())
		Expect(db.Create(&suspended).Error).To(Succeed())

		mine = hr.Contract{EmployeeID: employee, RoleID: "r1", ContractTypeID: "t1"}
		theirs = hr.Contract{EmployeeID: "5c1d7e22-1111-4a2b-9c3d-4e5f60718293", RoleID: "r1", ContractTypeID: "t1"}
		Expect(db.Create(&mine).Error).To(Succeed())
		Expect(db.Create(&theirs).Error).To(Succeed())
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
		return rec
	}

	record := func(state, contractID string) string {
		rec := do(http.MethodPost, "/contract_state_contracts",
			`{"id_contract_state":"`+state+`","id_contract":"`+contractID+`"}`)
		Expect(rec.Code).To(Equal(http.StatusCreated))
		var created contract.CreatedResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &created)).To(Succeed())
		return created.ID
	}

	decode := func(rec *httptest.ResponseRecorder) contract.ListResponse {
		var out contract.ListResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(Succeed())
		return out
	}

	It("should list history rows with their state", func() {
		record(active.ID, mine.ID)
		record(active.ID, theirs.ID)

		rec := do(http.MethodGet, "/contract_state_contracts", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		out := decode(rec)
		Expect(out.Count).To(Equal(int64(2)))
		Expect(out.Data[0].State.State).To(Equal("Active"))
		Expect(out.Data[0].State.HexColor).To(Equal("#00AA00"))
	})

	It("should give one employee's history newest first", func() {
		record(active.ID, mine.ID)
		time.Sleep(5 * time.Millisecond)
		record(suspended.ID, mine.ID)
		record(active.ID, theirs.ID)

		out := decode(do(http.MethodGet, "/contract_state_contracts/"+employee, ""))
		Expect(out.Count).To(Equal(int64(2)))
		Expect(out.Data[0].State.State).To(Equal("Suspended"))
		Expect(out.Data[1].State.State).To(Equal("Active"))
		Expect(out.Data[0].ContractState.ContractID).To(Equal(mine.ID))
	})

	It("should change the state of a row", func() {
		id := record(active.ID, mine.ID)

		rec := do(http.MethodPut, "/contract_state_contracts/"+id,
			`{"id_contract_state":"`+suspended.ID+`","id_contract":"`+mine.ID+`"}`)
		Expect(rec.Code).To(Equal(http.StatusOK))
		var entry contract.Entry
		Expect(json.Unmarshal(rec.Body.Bytes(), &entry)).To(Succeed())
		Expect(entry.State.State).To(Equal("Suspended"))
	})

	It("should reject unknown references", func() {
		rec := do(http.MethodPost, "/contract_state_contracts",
			`{"id_contract_state":"`+active.ID+`","id_contract":"7a7a7a7a-0000-4000-8000-000000000000"}`)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(rec.Body.String()).To(ContainSubstring("contract does not exist"))

		rec = do(http.MethodPut, "/contract_state_contracts/7a7a7a7a-0000-4000-8000-000000000000",
			`{"id_contract_state":"`+active.ID+`","id_contract":"`+mine.ID+`"}`)
		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})

	It("should soft delete and 404 on a repeat", func() {
		id := record(active.ID, mine.ID)

		Expect(do(http.MethodDelete, "/contract_state_contracts/"+id, "").Code).To(Equal(http.StatusNoContent))
		Expect(do(http.MethodDelete, "/contract_state_contracts/"+id, "").Code).To(Equal(http.StatusNotFound))
		Expect(decode(do(http.MethodGet, "/contract_state_contracts", "")).Count).To(BeZero())

		var n int64
		Expect(db.Unscoped().Model(&hr.ContractStateContract{}).Count(&n).Error).To(Succeed())
		Expect(n).To(Equal(int64(1)))
	})
})
