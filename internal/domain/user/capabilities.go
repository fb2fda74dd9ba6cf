package user

// Capability names an operation an authenticated identity may invoke.
type Capability string

const (
	CapManageEvents     Capability = "events.manage"
	CapViewEvents       Capability = "events.view"
	CapSearchEvents     Capability = "events.search"
	CapViewStats        Capability = "events.stats"
	CapViewReports      Capability = "registrations.reports"
	CapRegister         Capability = "registrations.self"
	CapViewRegistration Capability = "registrations.own"
	CapManageUsers      Capability = "users.manage"
	CapAudit            Capability = "data.audit"
)

var capabilities = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapManageEvents: true,
		CapViewEvents:   true,
		CapViewStats:    true,
		CapViewReports:  true,
		CapManageUsers:  true,
		CapAudit:        true,
	},
	RoleStudent: {
		CapViewEvents:       true,
		CapSearchEvents:     true,
		CapRegister:         true,
		CapViewRegistration: true,
	},
}

// Can reports whether role r grants c. Unknown roles grant nothing.
func (r Role) Can(c Capability) bool {
	return capabilities[r][c]
}
