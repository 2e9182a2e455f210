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

// Package testutils provides utilities used in tests
package testutils

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/airavoto/gamingpos/pkg/server/database"
	"github.com/airavoto/gamingpos/pkg/server/session"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitMemoryDB creates an in-memory SQLite database with the schema initialized
func InitMemoryDB(t *testing.T) *gorm.DB {
	// A unique name per test keeps databases from being shared across tests.
	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	database.InitSchema(db)

	return db
}

// SetupUserData creates and returns a new user for testing purposes
func SetupUserData(db *gorm.DB, username, password, role string) database.User {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(errors.Wrap(err, "hashing password"))
	}

	user := database.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}
	if err := db.Save(&user).Error; err != nil {
		panic(errors.Wrap(err, "preparing user"))
	}

	return user
}

// SetupSession creates a session for the given user and returns its id
func SetupSession(t *testing.T, store session.Store, user database.User) string {
	sid, err := session.GenerateSID()
	if err != nil {
		t.Fatal(errors.Wrap(err, "generating sid"))
	}

	err = store.Set(sid, session.Data{
		UserID:        user.ID,
		Username:      user.Username,
		Role:          user.Role,
		Authenticated: true,
	})
	if err != nil {
		t.Fatal(errors.Wrap(err, "preparing session"))
	}

	return sid
}

// HTTPDo makes an HTTP request and returns a response
func HTTPDo(t *testing.T, req *http.Request) *http.Response {
	hc := http.Client{
		// Do not follow redirects so that redirects themselves can be tested.
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	res, err := hc.Do(req)
	if err != nil {
		t.Fatal(errors.Wrap(err, "performing http request"))
	}

	return res
}

// SetReqSessionCookie attaches a fresh session cookie for the given user
func SetReqSessionCookie(t *testing.T, store session.Store, req *http.Request, user database.User) {
	sid := SetupSession(t, store, user)

	req.AddCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    sid,
		HttpOnly: true,
		Path:     "/",
	})
}

// HTTPAuthDo makes an HTTP request with a session cookie for the given user
func HTTPAuthDo(t *testing.T, store session.Store, req *http.Request, user database.User) *http.Response {
	SetReqSessionCookie(t, store, req, user)

	return HTTPDo(t, req)
}

// MakeReq makes an HTTP request and returns a response
func MakeReq(endpoint string, method, path, data string) *http.Request {
	u := fmt.Sprintf("%s%s", endpoint, path)

	req, err := http.NewRequest(method, u, strings.NewReader(data))
	if err != nil {
		panic(errors.Wrap(err, "constructing http request"))
	}

	if data != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	return req
}

// MustExec fails the test if the given database query has error
func MustExec(t *testing.T, db *gorm.DB, message string) {
	if err := db.Error; err != nil {
		t.Fatalf("%s: %s", message, err.Error())
	}
}

// GetCookieByName returns a cookie with the given name
func GetCookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	var ret *http.Cookie

	for i := 0; i < len(cookies); i++ {
		if cookies[i].Name == name {
			ret = cookies[i]
			break
		}
	}

	return ret
}
