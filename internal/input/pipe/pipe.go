// Package pipe provides an unbounded FIFO channel pair.
//
// The terminal polling goroutine must never block on a slow consumer,
// and no key may be dropped or reordered, so a fixed-capacity channel
// is not enough. Unbounded decouples the two sides with an elastic
// in-memory queue.
package pipe

// Unbounded returns a connected send/receive channel pair. Sends never
// block; values are delivered on the receive side in send order.
// Closing the send side drains any queued values to the receiver and
// then closes the receive side.
func Unbounded[T any]() (chan<- T, <-chan T) {
	in := make(chan T)
	out := make(chan T)
	go run(in, out)
	return in, out
}

func run[T any](in <-chan T, out chan<- T) {
	defer close(out)
	var queue []T
	for {
		if len(queue) == 0 {
			v, ok := <-in
			if !ok {
				return
			}
			queue = append(queue, v)
			continue
		}
		select {
		case v, ok := <-in:
			if !ok {
				for _, v := range queue {
					out <- v
				}
				return
			}
			queue = append(queue, v)
		case out <- queue[0]:
			queue = queue[1:]
			if len(queue) == 0 {
				// Release the backing array so a burst does not pin
				// memory for the life of the pipe.
				queue = nil
			}
		}
	}
}
