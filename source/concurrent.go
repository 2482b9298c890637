package source

import "context"

// result carries an item or error through a channel.
type result[T any] struct {
	val T
	ok  bool
	err error
}

// channelIter reads items from a result channel. Used by Buffer.
type channelIter[T any] struct {
	ch     <-chan result[T]
	closer func() error
}

func (it *channelIter[T]) Next(ctx context.Context) (T, bool, error) {
	select {
	case r, open := <-it.ch:
		if !open {
			var zero T
			return zero, false, nil
		}
		return r.val, r.ok, r.err
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	}
}

func (it *channelIter[T]) Close() error {
	if it.closer != nil {
		return it.closer()
	}
	return nil
}

// Buffer adds a buffered channel between src and its consumer.
// This decouples the production rate from the consumption rate.
func Buffer[T any](src Source[T], size int) Source[T] {
	if size <= 0 {
		size = 1
	}
	return sourceFunc[T](func(ctx context.Context) Iterator[T] {
		upstream := src.Produce(ctx)
		bufCtx, cancel := context.WithCancel(ctx)
		ch := make(chan result[T], size)

		go func() {
			defer close(ch)
			for {
				val, ok, err := upstream.Next(bufCtx)
				if err != nil {
					select {
					case ch <- result[T]{err: err}:
					case <-bufCtx.Done():
					}
					return
				}
				if !ok {
					return
				}
				select {
				case ch <- result[T]{val: val, ok: true}:
				case <-bufCtx.Done():
					return
				}
			}
		}()

		return &channelIter[T]{
			ch: ch,
			closer: func() error {
				cancel()
				return upstream.Close()
			},
		}
	})
}
