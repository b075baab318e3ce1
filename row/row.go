// Package row implements the fixed (id, username, email) schema codec.
package row

import (
	"encoding/binary"
	"fmt"
)

const (
	// UsernameMaxLength is the longest username a row can carry.
	UsernameMaxLength = 32
	// EmailMaxLength is the longest email a row can carry.
	EmailMaxLength = 255

	idSize       = 4
	usernameSize = UsernameMaxLength + 1 // 33
	emailSize    = EmailMaxLength + 1    // 256

	idOffset       = 0
	usernameOffset = idOffset + idSize
	emailOffset    = usernameOffset + usernameSize

	// Size is the fixed serialized width of a row: 293 bytes.
	Size = emailOffset + emailSize
)

// Row is the engine's single fixed schema.
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// Validate reports the exact user-visible error for an oversized row.
// Serialize calls it, so a direct caller gets the same "String is too
// long." error that the REPL's parser reports from its own length check.
func (r Row) Validate() error {
	if len(r.Username) > UsernameMaxLength {
		return fmt.Errorf("String is too long.")
	}
	if len(r.Email) > EmailMaxLength {
		return fmt.Errorf("String is too long.")
	}
	return nil
}

// Serialize writes r as exactly Size bytes into dst.
func Serialize(r Row, dst []byte) error {
	if len(dst) != Size {
		return fmt.Errorf("row.Serialize: dst length %d, expected %d", len(dst), Size)
	}
	if err := r.Validate(); err != nil {
		return err
	}

	for i := range dst {
		dst[i] = 0
	}

	binary.LittleEndian.PutUint32(dst[idOffset:idOffset+idSize], r.ID)
	copy(dst[usernameOffset:usernameOffset+usernameSize], r.Username)
	copy(dst[emailOffset:emailOffset+emailSize], r.Email)
	return nil
}

// Deserialize is the inverse of Serialize. Trailing zero padding on the
// username/email fields is trimmed; a zero-terminator mid-field also
// stops the string, so writers that null-terminate and writers that
// zero-pad the whole tail both round-trip correctly.
func Deserialize(src []byte) (Row, error) {
	if len(src) != Size {
		return Row{}, fmt.Errorf("row.Deserialize: src length %d, expected %d", len(src), Size)
	}
	id := binary.LittleEndian.Uint32(src[idOffset : idOffset+idSize])
	username := trimZero(src[usernameOffset : usernameOffset+usernameSize])
	email := trimZero(src[emailOffset : emailOffset+emailSize])
	return Row{ID: id, Username: username, Email: email}, nil
}

func trimZero(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
