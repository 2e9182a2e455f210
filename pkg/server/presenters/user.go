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

package presenters

import "github.com/airavoto/gamingpos/pkg/server/database"

// User is a presented user. The password hash is never exposed.
type User struct {
	ID                  string  `json:"id"`
	Username            string  `json:"username"`
	Role                string  `json:"role"`
	Email               *string `json:"email"`
	FirstName           *string `json:"firstName"`
	LastName            *string `json:"lastName"`
	OnboardingCompleted bool    `json:"onboardingCompleted"`
	CreatedAt           string  `json:"createdAt"`
}

// PresentUser presents a user
func PresentUser(u database.User) User {
	return User{
		ID:                  u.ID,
		Username:            u.Username,
		Role:                u.Role,
		Email:               u.Email,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		OnboardingCompleted: u.OnboardingCompleted,
		CreatedAt:           FormatTS(u.CreatedAt),
	}
}

// PresentUsers presents a slice of users
func PresentUsers(users []database.User) []User {
	ret := make([]User, 0, len(users))
	for _, u := range users {
		ret = append(ret, PresentUser(u))
	}

	return ret
}
