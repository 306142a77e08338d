package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth  = RouteApiV1 + "/auth"
	RouteLogin = RouteAuth + "/login"

	RouteCustomers = RouteApiV1 + "/customers"
	RouteCustomer  = RouteCustomers + "/:customer_id"

	// stored photos
	RouteStorage = "/storage"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
