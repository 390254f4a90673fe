// SPDX-License-Identifier: EPL-2.0

package nodes

import (
	"math"
	"sync/atomic"
)

type atomicFloat32 struct {
	bits atomic.Uint32
}

func (f *atomicFloat32) Load() float32   { return math.Float32frombits(f.bits.Load()) }
func (f *atomicFloat32) Store(v float32) { f.bits.Store(math.Float32bits(v)) }
