// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package failure

import (
	"fmt"
)

// UnknownNetwork is returned when a network can not be found in the registry.
// Exactly one of ID or Name identifies the unresolved key.
type UnknownNetwork struct {
	Description Description
	ID          uint8
	Name        string
}

func (u UnknownNetwork) Error() string {
	if u.Name != "" {
		return fmt.Sprintf("unknown network (name: %s): %s", u.Name, u.Description)
	}
	return fmt.Sprintf("unknown network (id: %d): %s", u.ID, u.Description)
}

type UnknownSecurityState struct {
	Description   Description
	Discriminator string
}

func (u UnknownSecurityState) Error() string {
	return fmt.Sprintf("unknown security state (discriminator: %s): %s", u.Discriminator, u.Description)
}
