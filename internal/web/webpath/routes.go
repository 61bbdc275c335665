package webpath

const (
	Health = "/health"

	Api       = "/api"
	ApiSignup = Api + "/signup"
	ApiPicks  = Api + "/picks"

	ApiPayments       = Api + "/payments"
	ApiPaymentIntent  = ApiPayments + "/intent"
	ApiPaymentConfirm = ApiPayments + "/confirm"

	ApiAdmin            = Api + "/admin"
	ApiAdminSignin      = ApiAdmin + "/signin"
	ApiAdminPicks       = ApiAdmin + "/picks"
	ApiAdminPickByID    = ApiAdminPicks + "/:id"
	ApiAdminStats       = ApiAdmin + "/stats"
	ApiAdminSubscribers = ApiAdmin + "/subscribers"
	ApiAdminExport      = ApiAdmin + "/export"
)
