package entity

// Agent is a commission agent referenced by policies. Provisioned from
// config; the engine only ever reads these rows.
type Agent struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	BranchCode   *string `json:"branch_code,omitempty"`
	Relationship *string `json:"relationship,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	Active       bool    `json:"active"`
}
