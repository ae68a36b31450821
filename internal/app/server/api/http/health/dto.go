package health

// Input represents the input for health check endpoint
type Input struct{}

// Output represents the output for health check endpoint
type Output struct {
	Body Response
}

// Response represents the health check response
type Response struct {
	Status   string `json:"status" example:"OK" doc:"Health status of the service"`
	Upstream string `json:"upstream" example:"OK" enum:"OK,DOWN,UNKNOWN" doc:"Reachability of the remote posts API"`
	Error    string `json:"error,omitempty" doc:"Upstream failure, if any"`
}
