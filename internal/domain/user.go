package domain

type Role string

const (
	RoleClient Role = "CLIENT"
	RoleAgent  Role = "AGENT"
)

type AgentType string

const (
	AgentTypeCompany AgentType = "COMPANY"
	AgentTypeBank    AgentType = "BANK"
)

type User struct {
	ID           int32  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	CPF          string `json:"cpf"`
	Active       bool   `json:"active"`
	Role         Role   `json:"role"`
	CreatedOn    string `json:"created_on"`
	UpdatedOn    string `json:"updated_on"`
}

// ClientProfile is the CLIENT payload of a user. A user carries exactly one
// profile, selected by its Role.
type ClientProfile struct {
	UserID     int32  `json:"user_id"`
	Profession string `json:"profession"`
}

// AgentProfile is the AGENT payload of a user. Agents are either rental
// companies or banks; only banks may issue credit contracts.
type AgentProfile struct {
	UserID    int32     `json:"user_id"`
	CNPJ      string    `json:"cnpj"`
	AgentType AgentType `json:"agent_type"`
}

type Employment struct {
	ID          int32  `json:"id"`
	ClientID    int32  `json:"client_id"`
	Employer    string `json:"employer"`
	Position    string `json:"position"`
	SalaryCents int64  `json:"salary_cents"`
}

// MaxEmployments is the cap on income records per client.
const MaxEmployments = 3

// Actor identifies the authenticated caller of a service operation.
// Handlers build it from the verified token; services never consult
// ambient state for the current user.
type Actor struct {
	UserID int32
	Role   Role
}
