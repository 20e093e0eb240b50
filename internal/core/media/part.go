// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package media

import (
	"encoding/base64"
	"fmt"

	"google.golang.org/genai"
)

// Part converts the inline encoding into the SDK's request part form.
func (p InlinePart) Part() (*genai.Part, error) {
	raw, err := base64.StdEncoding.DecodeString(p.Data)
	if err != nil {
		return nil, fmt.Errorf("invalid inline payload: %w", err)
	}
	return &genai.Part{
		InlineData: &genai.Blob{
			MIMEType: p.MIMEType,
			Data:     raw,
		},
	}, nil
}
