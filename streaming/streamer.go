package streaming

// A Streamer feeds rendered commands to a downstream motion
// controller, one line at a time, and tracks its acknowledgements.
type Streamer interface {
	Connect(name string) error
	Stop()
	Pause()
	Resume()
	Send(lines []string, progress chan int) error
}
