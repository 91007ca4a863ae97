package postgres

import (
	"context"

	"github.com/frahmantamala/hr-management/internal/contract"
	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"gorm.io/gorm"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) contract.RepositoryAPI {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) List(ctx context.Context, p query.ListParams) ([]hr.ContractStateContract, int64, error) {
	base := r.db.WithContext(ctx).Model(&hr.ContractStateContract{}).
		Joins("JOIN contract_state ON contract_state.id_contract_state = contract_state_contract.id_contract_state")
	return r.page(base, p)
}

func (r *ContractRepository) ListByEmployee(ctx context.Context, employeeID string, p query.ListParams) ([]hr.ContractStateContract, int64, error) {
	base := r.db.WithContext(ctx).Model(&hr.ContractStateContract{}).
		Joins("JOIN contract_state ON contract_state.id_contract_state = contract_state_contract.id_contract_state").
		Joins("JOIN contract ON contract.id_contract = contract_state_contract.id_contract").
		Where("contract.id_employee = ?", employeeID)
	return r.page(base, p)
}

func (r *ContractRepository) page(base *gorm.DB, p query.ListParams) ([]hr.ContractStateContract, int64, error) {
	base = p.Search(base, "contract_state.state", "contract_state.description")

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []hr.ContractStateContract
	err := p.Page(base.Order("contract_state_contract.created_at DESC")).
		Preload("State").
		Find(&rows).Error
	return rows, total, err
}

func (r *ContractRepository) GetByID(ctx context.Context, id string) (*hr.ContractStateContract, error) {
	var m hr.ContractStateContract
	err := r.db.WithContext(ctx).Preload("State").Where("id_contract_state_contract = ?", id).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *ContractRepository) Create(ctx context.Context, m *hr.ContractStateContract) error {
	return r.db.WithContext(ctx).Omit("State").Create(m).Error
}

func (r *ContractRepository) Update(ctx context.Context, m *hr.ContractStateContract) error {
	return r.db.WithContext(ctx).Omit("State").Save(m).Error
}

func (r *ContractRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id_contract_state_contract = ?", id).Delete(&hr.ContractStateContract{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContractRepository) ContractExists(ctx context.Context, id string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&hr.Contract{}).Where("id_contract = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *ContractRepository) StateExists(ctx context.Context, id string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&hr.ContractState{}).Where("id_contract_state = ?", id).Count(&n).Error
	return n > 0, err
}
