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

// Package assert provides assertion helpers for tests
package assert

import (
	"io"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Equal fails a test if the actual does not match the expected
func Equal(t *testing.T, actual, expected interface{}, message string) {
	t.Helper()

	if actual != expected {
		t.Errorf("%s: got %+v, want %+v", message, actual, expected)
	}
}

// Equalf fails a test immediately if the actual does not match the expected
func Equalf(t *testing.T, actual, expected interface{}, message string) {
	t.Helper()

	if actual != expected {
		t.Fatalf("%s: got %+v, want %+v", message, actual, expected)
	}
}

// NotEqual fails a test if the actual matches the expected
func NotEqual(t *testing.T, actual, expected interface{}, message string) {
	t.Helper()

	if actual == expected {
		t.Errorf("%s: got %+v, want something else", message, actual)
	}
}

// DeepEqual fails a test if the actual does not deeply match the expected
func DeepEqual(t *testing.T, actual, expected interface{}, message string) {
	t.Helper()

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("%s: (-want +got):\n%s", message, diff)
	}
}

// StatusCodeEquals fails a test if the response's status code does not match the expected
func StatusCodeEquals(t *testing.T, res *http.Response, expected int, message string) {
	t.Helper()

	if res.StatusCode != expected {
		body, err := io.ReadAll(res.Body)
		if err != nil {
			t.Fatal("reading the response body")
		}

		t.Errorf("%s: status code got %d, want %d. Body: %s", message, res.StatusCode, expected, string(body))
	}
}
