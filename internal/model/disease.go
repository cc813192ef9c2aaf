package model

// Disease is one entry in the chronic-disease information catalog:
// the education pages describing each NCD, its risks and its care.
type Disease struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	RiskFactors []string `json:"risk_factors"`
	Prevention  []string `json:"prevention"`
	Care        []string `json:"care"`
	Treatment   []string `json:"treatment"`
}
