// SPDX-License-Identifier: EPL-2.0

package downmix

import "errors"

var (
	ErrUnknownStrategy = errors.New("unknown downmix strategy")
)
