// SPDX-License-Identifier: MIT
// Package sparse: file entry points, thin wrappers over the text codec.
// Existence checks, permissions and any interactive prompting stay with the
// caller; these helpers only move bytes and delegate to Parse/Encode.

package sparse

import "os"

// savePerm is the file mode used for Save output.
const savePerm = 0o644

// Load reads the file at path and decodes it with Parse.
// Codec options apply exactly as with Parse. I/O and format failures are
// wrapped with the Load tag; errors.Is still matches both the underlying
// fs errors and the package sentinels.
func Load(path string, opts ...Option) (*Matrix, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, sparseErrorf(opLoad, err)
	}

	m, err := Parse(string(raw), opts...)
	if err != nil {
		return nil, sparseErrorf(opLoad, err)
	}

	return m, nil
}

// Save writes the canonical text form of m to path, creating or truncating
// the file. Returns ErrNilMatrix for a nil receiver; I/O failures are
// wrapped with the Save tag.
func (m *Matrix) Save(path string) error {
	if err := validateNotNil(m); err != nil {
		return sparseErrorf(opSave, err)
	}
	if err := os.WriteFile(path, []byte(m.Encode()), savePerm); err != nil {
		return sparseErrorf(opSave, err)
	}

	return nil
}
