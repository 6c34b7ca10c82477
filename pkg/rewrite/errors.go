// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rewrite

// ❌ ReadError reports a file that could not be opened or decoded as
// UTF-8 text. It is handled at the file boundary and never aborts the
// run.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return "reading " + e.Path + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ❌ WriteError reports transformed content that could not be
// persisted back to its file. It is handled at the file boundary and
// never aborts the run.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return "writing " + e.Path + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
