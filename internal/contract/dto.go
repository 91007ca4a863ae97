package contract

type StateChangeDTO struct {
	ContractStateID string `json:"id_contract_state" validate:"required,uuid"`
	ContractID      string `json:"id_contract" validate:"required,uuid"`
}

type CreatedResponse struct {
	ID string `json:"id_contract_state_contract"`
}
