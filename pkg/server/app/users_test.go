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

package app

import (
	"testing"

	"github.com/airavoto/gamingpos/pkg/assert"
	"github.com/airavoto/gamingpos/pkg/server/database"
	"github.com/airavoto/gamingpos/pkg/server/session"
	"github.com/airavoto/gamingpos/pkg/server/testutils"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)

		a := NewTest()
		a.DB = db
		if _, err := a.CreateUser("alice", "pass1234", "", ""); err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		var userCount int64
		var userRecord database.User
		testutils.MustExec(t, db.Model(&database.User{}).Count(&userCount), "counting user")
		testutils.MustExec(t, db.First(&userRecord), "finding user")

		assert.Equal(t, userCount, int64(1), "user count mismatch")
		assert.Equal(t, userRecord.Username, "alice", "username mismatch")
		assert.Equal(t, userRecord.Role, database.RoleStaff, "role should default to staff")

		passwordErr := bcrypt.CompareHashAndPassword([]byte(userRecord.PasswordHash), []byte("pass1234"))
		assert.Equal(t, passwordErr, nil, "password mismatch")
	})

	t.Run("admin role", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)

		a := NewTest()
		a.DB = db
		user, err := a.CreateUser("root", "pass1234", "root@example.com", database.RoleAdmin)
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equal(t, user.Role, database.RoleAdmin, "role mismatch")
		if user.Email == nil {
			t.Fatal("expected email to be set")
		}
		assert.Equal(t, *user.Email, "root@example.com", "email mismatch")
	})

	t.Run("password too short", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)

		a := NewTest()
		a.DB = db
		_, err := a.CreateUser("alice", "pass123", "", "")

		assert.Equal(t, errors.Cause(err), ErrPasswordTooShort, "error mismatch")

		var userCount int64
		testutils.MustExec(t, db.Model(&database.User{}).Count(&userCount), "counting user")
		assert.Equal(t, userCount, int64(0), "user count mismatch")
	})

	t.Run("missing credentials", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)

		a := NewTest()
		a.DB = db
		_, err := a.CreateUser("", "pass1234", "", "")

		assert.Equal(t, errors.Cause(err), ErrCredentialsMissing, "error mismatch")
	})

	t.Run("duplicate username", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)

		testutils.SetupUserData(db, "alice", "somepassword", database.RoleStaff)

		a := NewTest()
		a.DB = db
		_, err := a.CreateUser("alice", "newpassword", "", "")

		assert.Equal(t, errors.Cause(err), ErrDuplicateUsername, "error mismatch")

		var userCount int64
		testutils.MustExec(t, db.Model(&database.User{}).Count(&userCount), "counting user")
		assert.Equal(t, userCount, int64(1), "user count mismatch")
	})
}

func TestAuthenticate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)
		testutils.SetupUserData(db, "alice", "pass1234", database.RoleStaff)

		a := NewTest()
		a.DB = db
		user, err := a.Authenticate("alice", "pass1234")
		if err != nil {
			t.Fatal(errors.Wrap(err, "executing"))
		}

		assert.Equal(t, user.Username, "alice", "username mismatch")
	})

	t.Run("wrong password", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)
		testutils.SetupUserData(db, "alice", "pass1234", database.RoleStaff)

		a := NewTest()
		a.DB = db
		_, err := a.Authenticate("alice", "wrongpass")

		assert.Equal(t, errors.Cause(err), ErrLoginInvalid, "error mismatch")
	})

	t.Run("unknown user", func(t *testing.T) {
		db := testutils.InitMemoryDB(t)

		a := NewTest()
		a.DB = db
		_, err := a.Authenticate("nobody", "pass1234")

		assert.Equal(t, errors.Cause(err), ErrLoginInvalid, "error mismatch")
	})
}

func TestSignIn(t *testing.T) {
	db := testutils.InitMemoryDB(t)

	a := NewTest()
	a.DB = db
	a.Sessions = session.NewDBStore(db, a.Clock)
	user := testutils.SetupUserData(db, "alice", "pass1234", database.RoleAdmin)

	sid, err := a.SignIn(&user)
	if err != nil {
		t.Fatal(errors.Wrap(err, "executing"))
	}

	data, err := a.Sessions.Get(sid)
	if err != nil {
		t.Fatal(errors.Wrap(err, "getting session"))
	}
	if data == nil {
		t.Fatal("expected session")
	}

	assert.DeepEqual(t, *data, session.Data{
		UserID:        user.ID,
		Username:      "alice",
		Role:          database.RoleAdmin,
		Authenticated: true,
	}, "session data mismatch")
}
