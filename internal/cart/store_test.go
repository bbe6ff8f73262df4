package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_SessionsAreIsolated(t *testing.T) {
	s := NewStore()

	a := s.Session("session-a")
	b := s.Session("session-b")

	a.Do(func(c *Cart) { c.AddItem(tee(), "M") })

	b.Do(func(c *Cart) {
		assert.True(t, c.Empty())
	})
	a.Do(func(c *Cart) {
		assert.Equal(t, int64(1), c.ItemCount())
	})
}

func TestStore_SameIDReturnsSameSession(t *testing.T) {
	s := NewStore()

	s.Session("sid").Do(func(c *Cart) { c.AddItem(tee(), "M") })

	s.Session("sid").Do(func(c *Cart) {
		assert.Equal(t, int64(1), c.ItemCount())
	})
}

func TestSession_CheckoutKeyStableUntilReset(t *testing.T) {
	s := NewStore()
	sess := s.Session("sid")

	k1 := sess.CheckoutKey()
	k2 := sess.CheckoutKey()
	assert.NotEmpty(t, k1)
	//再送信は同じキー
	assert.Equal(t, k1, k2)

	sess.ResetAfterCheckout()
	k3 := sess.CheckoutKey()
	assert.NotEqual(t, k1, k3)
}

func TestSession_ResetAfterCheckoutClearsCart(t *testing.T) {
	s := NewStore()
	sess := s.Session("sid")

	sess.Do(func(c *Cart) {
		c.AddItem(tee(), "M")
		c.AddItem(hoodie(), "L")
	})
	sess.ResetAfterCheckout()

	sess.Do(func(c *Cart) {
		assert.True(t, c.Empty())
	})
}

func TestStore_Drop(t *testing.T) {
	s := NewStore()
	s.Session("sid").Do(func(c *Cart) { c.AddItem(tee(), "M") })

	s.Drop("sid")

	s.Session("sid").Do(func(c *Cart) {
		assert.True(t, c.Empty())
	})
}

func TestStore_ConcurrentAccessSameSession(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Session("sid").Do(func(c *Cart) { c.AddItem(tee(), "M") })
		}()
	}
	wg.Wait()

	s.Session("sid").Do(func(c *Cart) {
		assert.Equal(t, int64(50), c.ItemCount())
		assert.Len(t, c.Lines(), 1)
	})
}
