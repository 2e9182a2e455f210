/* Copyright 2025 Airavoto Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package session persists login sessions in the relational store. Rows
// whose expiry has passed are treated as absent and removed by a periodic
// sweep rather than per-request.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/airavoto/gamingpos/pkg/clock"
	"github.com/airavoto/gamingpos/pkg/server/database"
	"github.com/airavoto/gamingpos/pkg/server/log"
	"github.com/pkg/errors"
	"github.com/robfig/cron"
	"gorm.io/gorm"
)

const (
	// CookieName is the name of the session cookie
	CookieName = "gamingpos.sid"
	// TTL is the sliding session lifetime
	TTL = 24 * time.Hour
)

// Data is the state carried by an authenticated session
type Data struct {
	UserID        string `json:"userId"`
	Username      string `json:"username"`
	Role          string `json:"role"`
	Authenticated bool   `json:"isAuthenticated"`
}

// Store persists sessions keyed by session id
type Store interface {
	// Get returns the session data for the given id, or nil if the
	// session is absent or expired.
	Get(sid string) (*Data, error)
	// Set writes the session data and resets the expiry to now + TTL.
	Set(sid string, data Data) error
	// Destroy removes the session.
	Destroy(sid string) error
	// Touch extends the expiry of an existing session to now + TTL.
	Touch(sid string) error
	// Prune deletes expired rows and returns the number deleted.
	Prune() (int64, error)
}

// DBStore is a Store implemented against the shared database
type DBStore struct {
	db    *gorm.DB
	clock clock.Clock
}

// NewDBStore creates a session store backed by the given database
func NewDBStore(db *gorm.DB, c clock.Clock) *DBStore {
	return &DBStore{db: db, clock: c}
}

// GenerateSID returns a new cryptographically random session id
func GenerateSID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "reading random bits")
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Get implements Store.Get
func (s *DBStore) Get(sid string) (*Data, error) {
	var row database.Session
	err := s.db.Where("sid = ? AND expire > ?", sid, s.clock.Now().UnixMilli()).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "finding session")
	}

	var data Data
	if err := json.Unmarshal([]byte(row.Sess), &data); err != nil {
		return nil, errors.Wrap(err, "decoding session data")
	}

	return &data, nil
}

// Set implements Store.Set
func (s *DBStore) Set(sid string, data Data) error {
	sess, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "encoding session data")
	}

	row := database.Session{
		SID:    sid,
		Sess:   string(sess),
		Expire: s.clock.Now().Add(TTL).UnixMilli(),
	}
	if err := s.db.Save(&row).Error; err != nil {
		return errors.Wrap(err, "saving session")
	}

	return nil
}

// Destroy implements Store.Destroy
func (s *DBStore) Destroy(sid string) error {
	if err := s.db.Where("sid = ?", sid).Delete(&database.Session{}).Error; err != nil {
		return errors.Wrap(err, "deleting session")
	}

	return nil
}

// Touch implements Store.Touch
func (s *DBStore) Touch(sid string) error {
	expire := s.clock.Now().Add(TTL).UnixMilli()
	if err := s.db.Model(&database.Session{}).Where("sid = ?", sid).Update("expire", expire).Error; err != nil {
		return errors.Wrap(err, "touching session")
	}

	return nil
}

// Prune implements Store.Prune
func (s *DBStore) Prune() (int64, error) {
	res := s.db.Where("expire <= ?", s.clock.Now().UnixMilli()).Delete(&database.Session{})
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "pruning sessions")
	}

	return res.RowsAffected, nil
}

// StartPruning schedules an hourly sweep that deletes expired session rows.
// It returns the scheduler so the caller can stop it on shutdown.
func StartPruning(store Store) *cron.Cron {
	c := cron.New()
	c.AddFunc("@hourly", func() {
		count, err := store.Prune()
		if err != nil {
			log.ErrorWrap(err, "pruning sessions")
			return
		}

		if count > 0 {
			log.WithFields(log.Fields{
				"count": count,
			}).Info("pruned expired sessions")
		}
	})
	c.Start()

	return c
}
