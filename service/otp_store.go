package service

import (
	"sync"
	"time"
)

// OTPRecord is one pending one-time passcode.
type OTPRecord struct {
	Code     string
	Method   string
	IssuedAt time.Time
}

// OTPStore is a mutex-guarded expiring map of pending passcodes keyed by
// identifier (email or phone). Records live in process memory only and
// are lost on restart.
type OTPStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	records map[string]OTPRecord
}

// NewOTPStore creates a store whose records expire after ttl.
func NewOTPStore(ttl time.Duration) *OTPStore {
	return &OTPStore{
		ttl:     ttl,
		now:     time.Now,
		records: map[string]OTPRecord{},
	}
}

// Put stores or replaces the passcode for an identifier.
func (s *OTPStore) Put(identifier, code, method string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[identifier] = OTPRecord{
		Code:     code,
		Method:   method,
		IssuedAt: s.now(),
	}
}

// Get returns the pending record for an identifier. expired reports
// whether a record existed but outlived the TTL; expired records are
// evicted on read.
func (s *OTPStore) Get(identifier string) (record OTPRecord, ok, expired bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok = s.records[identifier]
	if !ok {
		return OTPRecord{}, false, false
	}
	if s.now().Sub(record.IssuedAt) > s.ttl {
		delete(s.records, identifier)
		return OTPRecord{}, false, true
	}
	return record, true, false
}

// Delete evicts the record for an identifier.
func (s *OTPStore) Delete(identifier string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, identifier)
}
