// Copyright 2023 SAP SE
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	"errors"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrLaunch            = errors.New("failed to launch cli")
	ErrUnknownFamily     = errors.New("unknown object family")
	ErrUnknownCommand    = errors.New("unknown command")
	ErrMissingExecutable = errors.New("no cli executable configured")
	ErrToolFailure       = errors.New("cli reported an error")
)
