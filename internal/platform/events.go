package platform

// TimeoutEvent is returned by NextEventTimeout when nothing arrived in time.
type TimeoutEvent struct{}
