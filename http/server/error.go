package http_server

// TimeoutMessage is the response body for request timeouts (pre-formatted JSON).
const TimeoutMessage = `{"error":"context deadline exceeded"}`
