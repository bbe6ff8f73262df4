package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Session は1ブラウジングセッション分のカートとチェックアウトキー。
// 同一セッションのHTTPリクエストは並行に届くことがあるのでここで直列化する。
type Session struct {
	mu          sync.Mutex
	cart        *Cart
	checkoutKey string
}

// Do はセッションロックを取ってカート操作を実行する。
func (s *Session) Do(fn func(c *Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.cart)
}

// CheckoutKey は注文送信の冪等キー。
// カートの中身が確定してから最初の送信時に採番し、再送信では同じ値を返す。
func (s *Session) CheckoutKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkoutKey == "" {
		s.checkoutKey = uuid.NewString()
	}
	return s.checkoutKey
}

// ResetAfterCheckout は注文確定後にカートを空にし、キーを破棄する。
// 次の注文は新しいキーで送信される。
func (s *Session) ResetAfterCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.checkoutKey = ""
}

// Store はセッションIDごとのカート置き場。プロセス内メモリのみで永続化しない。
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: map[string]*Session{}}
}

// NewSessionID はカートcookieに入れるIDを採番する。
func (s *Store) NewSessionID() string {
	return uuid.NewString()
}

// Session はセッションIDに対応するカートを返す（無ければ空で作る）。
func (s *Store) Session(sessionID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &Session{cart: New()}
		s.sessions[sessionID] = sess
	}
	return sess
}

// Drop はセッションを破棄する。
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
