// Package messenger is the chat transport seen by the game: send to a room or
// a user, receive messages, list the members of a group.
package messenger

import (
	"context"
	"regexp"
)

type TargetKind int

const (
	TargetRoom TargetKind = iota
	TargetUser
)

// Target is either a room (channel) or a user reached by direct message.
type Target struct {
	Kind TargetKind
	ID   string
}

func Room(id string) Target {
	return Target{Kind: TargetRoom, ID: id}
}

func Direct(userID string) Target {
	return Target{Kind: TargetUser, ID: userID}
}

// Content is one outbound message. Image, when set, is attached as ImageName
// with Caption as its description. Mentions lists the user ids allowed to be
// pinged by Text.
type Content struct {
	Text      string
	Image     []byte
	ImageName string
	Caption   string
	Mentions  []string
	// Title and Color turn the message into an embed with Text as its body.
	Title string
	Color int
}

type IncomingMessage struct {
	MessageID  string
	SenderID   string
	SenderName string
	SenderBot  bool
	RoomID     string
	GroupID    string
	IsGroup    bool
	Text       string
	Mentions   []Member
}

type Member struct {
	ID   string
	Name string
	Bot  bool
}

type Messenger interface {
	SendMessage(ctx context.Context, target Target, content Content) error
	OnIncomingMessage(handler func(IncomingMessage))
	GetGroupMembers(ctx context.Context, groupID string) ([]Member, error)
}

// Mention renders the ping markup for a user id.
func Mention(userID string) string {
	return "<@" + userID + ">"
}

var mentionRe = regexp.MustCompile(`^<@!?(\d+)>$`)

// ParseMention returns the user id of a mention token such as "<@123>".
func ParseMention(token string) (string, bool) {
	m := mentionRe.FindStringSubmatch(token)
	if m == nil {
		return "", false
	}
	return m[1], true
}
