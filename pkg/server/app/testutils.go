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
	"github.com/airavoto/gamingpos/pkg/clock"
	"github.com/airavoto/gamingpos/pkg/server/config"
)

// NewTest returns an app for a testing environment. The caller is
// expected to assign DB and Sessions.
func NewTest() App {
	return App{
		Clock: clock.NewMock(),
		Config: config.Config{
			Port:   "5000",
			DBMode: config.DBModeSQLite,
			DBPath: ":memory:",
		},
	}
}
