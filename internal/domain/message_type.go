package domain

import "fmt"

// MessageType labels an envelope's payload for the caller. It is carried
// as metadata only and never alters cryptographic treatment.
type MessageType uint8

const (
	MessageChat MessageType = iota
	MessageCommand
	MessageDeviceControl
	MessageSystemStatus
	MessageFileTransfer
)

func (m MessageType) String() string {
	switch m {
	case MessageChat:
		return "chat"
	case MessageCommand:
		return "command"
	case MessageDeviceControl:
		return "device-control"
	case MessageSystemStatus:
		return "system-status"
	case MessageFileTransfer:
		return "file-transfer"
	default:
		return fmt.Sprintf("message(%d)", uint8(m))
	}
}

// ParseMessageType maps a textual type name back to its enum value.
func ParseMessageType(s string) (MessageType, error) {
	for _, m := range []MessageType{
		MessageChat, MessageCommand, MessageDeviceControl, MessageSystemStatus, MessageFileTransfer,
	} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown message type %q", s)
}

// MarshalText encodes the type by name for JSON/YAML envelopes.
func (m MessageType) MarshalText() ([]byte, error) {
	switch m {
	case MessageChat, MessageCommand, MessageDeviceControl, MessageSystemStatus, MessageFileTransfer:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("unknown message type %d", uint8(m))
}

// UnmarshalText mirrors MarshalText.
func (m *MessageType) UnmarshalText(text []byte) error {
	v, err := ParseMessageType(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
