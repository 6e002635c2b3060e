// Package broadcast provides a type-safe single-slot broadcast channel for
// one-to-many value delivery.
//
// A Channel remembers the latest published value and fans each publish out to
// every active listener, in subscription order, synchronously on the
// publisher's goroutine. Publishes never interleave. Subscribing registers for
// future publishes only; there is no replay and no backlog, so a renderer that
// needs the last value pulls it with Latest instead.
//
// The channel is a pure value pipe: it has no failure concept and carries no
// errors. Its lifecycle is independent of whoever feeds it, which lets a
// long-lived consumer survive the producer being torn down and rebuilt.
//
// # Usage
//
//	ch := broadcast.NewChannel[int]()
//	defer ch.Close()
//
//	unsub, _ := ch.Subscribe(func(idx int) {
//	    fmt.Println("landed on", idx)
//	})
//	defer unsub()
//
//	_ = ch.Publish(3)
//
// Listeners run on the publishing goroutine, so they should be quick and must
// not publish to the same channel recursively.
package broadcast
