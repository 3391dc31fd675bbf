package gateway

// Result is the outcome of one backend call: either Success with the
// backend's JSON payload or Failure with its cause.
type Result struct {
	payload []byte
	cause   error
}

func Success(payload []byte) Result {
	return Result{payload: payload}
}

func Failure(cause error) Result {
	return Result{cause: cause}
}

func (r Result) OK() bool {
	return r.cause == nil
}

// Payload is the backend body, valid only when OK.
func (r Result) Payload() []byte {
	return r.payload
}

// Cause is the failure reason, nil when OK. It is for logs only and is never
// shown to clients.
func (r Result) Cause() error {
	return r.cause
}
