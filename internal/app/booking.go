package app

import (
	"fmt"
	"net/url"
)

// WhatsAppLink builds the deep link that opens a chat with the hostel's
// booking number, pre-filled with an interest message for the given room.
func WhatsAppLink(number, roomName string) string {
	msg := fmt.Sprintf("Hi, I'm interested in booking the %s at Vista Hostel.", roomName)
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(msg)
}
