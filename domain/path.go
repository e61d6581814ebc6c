package domain

import "fmt"

// ChannelPath builds the collection path for the shared public
// channel of a deployment: artifacts/{app-id}/public/data/{channel}.
func ChannelPath(appID, channel string) string {
	return fmt.Sprintf("artifacts/%s/public/data/%s", appID, channel)
}
