// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndview/internal/serialization"
)

// Save writes named tensors to a SafeTensors file as F32 data.
// Views are materialised; metadata may be nil.
//
// Example:
//
//	err := tensor.Save("weights.safetensors", map[string]*tensor.Tensor{"w": w}, nil)
func Save(path string, tensors map[string]*Tensor, metadata map[string]string) error {
	return serialization.WriteFile(path, tensors, metadata)
}

// Load reads every tensor of a SafeTensors file. Elements of any supported
// dtype are converted to float32.
func Load(path string) (map[string]*Tensor, error) {
	f, err := serialization.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return f.Tensors, nil
}
