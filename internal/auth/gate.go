package auth

import (
	"fmt"

	"github.com/mmynk/housepoints/internal/models"
)

// View is a screen of the application.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewScoring   View = "scoring"
	ViewAudit     View = "transparency"
	ViewSettings  View = "settings"
)

// AllViews lists the views in navigation order.
var AllViews = []View{ViewDashboard, ViewScoring, ViewAudit, ViewSettings}

// Policy returns the policy gating v. Public views return false.
func (v View) Policy() (Policy, bool) {
	switch v {
	case ViewScoring, ViewAudit:
		return StaffGroup, true
	case ViewSettings:
		return ManagementGroup, true
	default:
		return Policy{}, false
	}
}

// Title is the area name shown on the gate.
func (v View) Title() string {
	switch v {
	case ViewScoring:
		return "Área de Pontuação"
	case ViewAudit:
		return "Consulta de Auditoria"
	case ViewSettings:
		return "Gestão Geral"
	default:
		return "Placar Geral"
	}
}

// ParseView validates a view name. Empty selects the dashboard.
func ParseView(s string) (View, error) {
	if s == "" {
		return ViewDashboard, nil
	}
	for _, v := range AllViews {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view %q", s)
}

// Decision is the outcome of checking a session against a view.
type Decision int

const (
	// Admitted means the view may render.
	Admitted Decision = iota
	// LoginRequired means nobody is logged in and the view is gated.
	LoginRequired
	// AccessDenied means the logged-in role is outside the view's policy.
	// The session stays as it is.
	AccessDenied
)

func (d Decision) String() string {
	switch d {
	case Admitted:
		return "admitted"
	case LoginRequired:
		return "login_required"
	case AccessDenied:
		return "access_denied"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

// Check decides whether the session user (nil when logged out) may enter v.
// It is meant to run on every render, not just at login.
func Check(user *models.User, v View) Decision {
	policy, gated := v.Policy()
	if !gated {
		return Admitted
	}
	if user == nil {
		return LoginRequired
	}
	if !Authorize(*user, policy) {
		return AccessDenied
	}
	return Admitted
}
