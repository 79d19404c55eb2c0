// Package serialization saves and loads named tensors in the SafeTensors format.
//
//	Format Structure:
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON object, tensor name -> {dtype, shape, data_offsets}]
//	  [Tensor data: raw little-endian bytes]
//
// Writers emit F32 (default) or F16 data, in alphabetical tensor order, and
// record a SHA-256 of the data section under the "ndview.sha256" metadata key.
// Readers accept F16, BF16, F32, F64, I32, I64, U8 and BOOL and widen or
// narrow every element to float32. The checksum is verified when present.
//
// Example usage:
//
//	x, _ := tensor.From([][]int{{1, 2}, {3, 4}})
//	if err := serialization.WriteFile("x.safetensors", map[string]*tensor.Tensor{"x": x}, nil); err != nil {
//	    log.Fatal(err)
//	}
//
//	f, err := serialization.ReadFile("x.safetensors")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(f.Tensors["x"])
package serialization
