package closer

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestClose_LIFOOrder(t *testing.T) {
	c := NewCloser(time.Second)

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		c.Add(func(ctx context.Context) error {
			order = append(order, i)
			return nil
		})
	}

	if err := c.Close(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{2, 1, 0}
	for i, v := range want {
		if order[i] != v {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
}

func TestClose_CollectsErrors(t *testing.T) {
	c := NewCloser(time.Second)
	c.Add(func(ctx context.Context) error { return errors.New("boom") })
	c.Add(func(ctx context.Context) error { return nil })

	if err := c.Close(context.Background()); err == nil {
		t.Fatal("expected aggregated error")
	}
}

func TestClose_OnlyOnce(t *testing.T) {
	c := NewCloser(time.Second)

	calls := 0
	c.Add(func(ctx context.Context) error {
		calls++
		return nil
	})

	c.Close(context.Background())
	c.Close(context.Background())

	if calls != 1 {
		t.Errorf("close funcs must run once, ran %d times", calls)
	}
}

func TestClose_ForcedOnCanceledContext(t *testing.T) {
	c := NewCloser(500 * time.Millisecond)

	c.Add(func(ctx context.Context) error {
		time.Sleep(200 * time.Millisecond)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.Close(ctx); err == nil {
		t.Fatal("expected interruption error for canceled context")
	}
}
