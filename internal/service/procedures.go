package service

import "github.com/mmynk/housepoints/internal/auth"

const (
	AuthServiceName      = "housepoints.v1.AuthService"
	ScoringServiceName   = "housepoints.v1.ScoringService"
	AuditServiceName     = "housepoints.v1.AuditService"
	AdminServiceName     = "housepoints.v1.AdminService"
	DashboardServiceName = "housepoints.v1.DashboardService"
)

const (
	AuthServiceLoginProcedure      = "/housepoints.v1.AuthService/Login"
	AuthServiceLogoutProcedure     = "/housepoints.v1.AuthService/Logout"
	AuthServiceGetSessionProcedure = "/housepoints.v1.AuthService/GetSession"
	AuthServiceEnterViewProcedure  = "/housepoints.v1.AuthService/EnterView"

	ScoringServiceSubmitPointsProcedure   = "/housepoints.v1.ScoringService/SubmitPoints"
	ScoringServiceListHousesProcedure     = "/housepoints.v1.ScoringService/ListHouses"
	ScoringServiceListCategoriesProcedure = "/housepoints.v1.ScoringService/ListCategories"
	ScoringServiceApplyCategoryProcedure  = "/housepoints.v1.ScoringService/ApplyCategory"

	AuditServiceListEventsProcedure  = "/housepoints.v1.AuditService/ListEvents"
	AuditServiceDeleteEventProcedure = "/housepoints.v1.AuditService/DeleteEvent"

	AdminServiceListUsersProcedure      = "/housepoints.v1.AdminService/ListUsers"
	AdminServiceCreateUserProcedure     = "/housepoints.v1.AdminService/CreateUser"
	AdminServiceDeleteUserProcedure     = "/housepoints.v1.AdminService/DeleteUser"
	AdminServiceCreateHouseProcedure    = "/housepoints.v1.AdminService/CreateHouse"
	AdminServiceDeleteHouseProcedure    = "/housepoints.v1.AdminService/DeleteHouse"
	AdminServiceCreateCategoryProcedure = "/housepoints.v1.AdminService/CreateCategory"
	AdminServiceDeleteCategoryProcedure = "/housepoints.v1.AdminService/DeleteCategory"

	DashboardServiceGetDashboardProcedure = "/housepoints.v1.DashboardService/GetDashboard"
)

// ProcedureViews maps each gated procedure to the view whose policy guards
// it. Procedures that are absent need no session.
func ProcedureViews() map[string]auth.View {
	return map[string]auth.View{
		ScoringServiceSubmitPointsProcedure:   auth.ViewScoring,
		ScoringServiceListHousesProcedure:     auth.ViewScoring,
		ScoringServiceListCategoriesProcedure: auth.ViewScoring,
		ScoringServiceApplyCategoryProcedure:  auth.ViewScoring,

		AuditServiceListEventsProcedure:  auth.ViewAudit,
		AuditServiceDeleteEventProcedure: auth.ViewAudit,

		AdminServiceListUsersProcedure:      auth.ViewSettings,
		AdminServiceCreateUserProcedure:     auth.ViewSettings,
		AdminServiceDeleteUserProcedure:     auth.ViewSettings,
		AdminServiceCreateHouseProcedure:    auth.ViewSettings,
		AdminServiceDeleteHouseProcedure:    auth.ViewSettings,
		AdminServiceCreateCategoryProcedure: auth.ViewSettings,
		AdminServiceDeleteCategoryProcedure: auth.ViewSettings,
	}
}
