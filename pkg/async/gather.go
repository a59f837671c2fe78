package async

// GatherN waits for every channel and returns the results in argument
// order, whatever order they complete in.
func GatherN[R any](cs ...<-chan R) <-chan []R {
	return Promise(func() []R {
		results := make([]R, len(cs))
		for i, c := range cs {
			results[i] = <-c
		}
		return results
	})
}

// Map applies f to every item concurrently. results[i] is f(items[i]).
func Map[T, R any](items []T, f func(T) R) []R {
	promises := make([]<-chan R, len(items))
	for i, item := range items {
		item := item // per-iteration copy; go directive is below 1.22
		promises[i] = Promise(func() R { return f(item) })
	}
	return <-GatherN(promises...)
}
