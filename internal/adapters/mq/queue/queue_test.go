package queue

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/okian/swatch/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func job(id string) model.AnalysisJob {
	return model.AnalysisJob{ID: id, Pixels: []byte{1, 2, 3, 255}, Width: 1, Height: 1}
}

func TestInMemoryQueue(t *testing.T) {
	Convey("Given a queue with capacity 2", t, func() {
		q := NewInMemoryQueue(WithCapacity(2))
		ctx := context.Background()

		Convey("When it is empty", func() {
			So(q.Len(), ShouldEqual, 0)
			So(q.Capacity(), ShouldEqual, 2)
		})

		Convey("When enqueuing and dequeuing", func() {
			So(q.Enqueue(ctx, job("a")), ShouldBeNil)
			So(q.Len(), ShouldEqual, 1)
			got := <-q.Dequeue()
			q.Observe()

			Convey("Then jobs come back in order", func() {
				So(got.ID, ShouldEqual, "a")
				So(q.Len(), ShouldEqual, 0)
			})
		})

		Convey("When the queue is full", func() {
			So(q.Enqueue(ctx, job("a")), ShouldBeNil)
			So(q.Enqueue(ctx, job("b")), ShouldBeNil)
			err := q.Enqueue(ctx, job("c"))

			Convey("Then enqueue fails fast", func() {
				So(errors.Is(err, ErrQueueFull), ShouldBeTrue)
				So(q.Len(), ShouldEqual, 2)
			})
		})

		Convey("When the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			err := q.Enqueue(cctx, job("a"))
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})

		Convey("When the queue is closed", func() {
			So(q.Enqueue(ctx, job("a")), ShouldBeNil)
			So(q.Close(), ShouldBeNil)
			So(q.Close(), ShouldBeNil)

			Convey("Then enqueue is rejected", func() {
				So(q.IsClosed(), ShouldBeTrue)
				So(errors.Is(q.Enqueue(ctx, job("b")), ErrQueueClosed), ShouldBeTrue)
			})

			Convey("And queued jobs drain before the channel closes", func() {
				var ids []string
				for j := range q.Dequeue() {
					ids = append(ids, j.ID)
				}
				So(ids, ShouldResemble, []string{"a"})
			})
		})
	})
}

func TestInMemoryQueue_Concurrent(t *testing.T) {
	Convey("Given concurrent producers", t, func() {
		q := NewInMemoryQueue(WithCapacity(1000))
		ctx := context.Background()

		var wg sync.WaitGroup
		for p := 0; p < 10; p++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 50; i++ {
					_ = q.Enqueue(ctx, job("x"))
				}
			}()
		}
		wg.Wait()

		So(q.Len(), ShouldEqual, 500)
	})
}
