package testutil

import (
	"fmt"
	"strings"
)

// NetshProfilesOutput renders `netsh wlan show profiles` output listing names.
func NetshProfilesOutput(names ...string) string {
	var b strings.Builder
	b.WriteString("\r\nProfiles on interface Wi-Fi:\r\n\r\n")
	b.WriteString("Group policy profiles (read only)\r\n")
	b.WriteString("---------------------------------\r\n")
	b.WriteString("    <None>\r\n\r\n")
	b.WriteString("User profiles\r\n")
	b.WriteString("-------------\r\n")
	for _, name := range names {
		fmt.Fprintf(&b, "    All User Profile     : %s\r\n", name)
	}
	b.WriteString("\r\n")
	return b.String()
}

// NetshProfileOutput renders `netsh wlan show profile <name> key=clear`
// output. An empty key renders an open network with no Key Content line.
func NetshProfileOutput(name, key string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\r\nProfile %s on interface Wi-Fi:\r\n", name)
	b.WriteString("=======================================================================\r\n\r\n")
	b.WriteString("Applied: All User Profile\r\n\r\n")
	b.WriteString("Profile information\r\n-------------------\r\n")
	b.WriteString("    Version                : 1\r\n")
	b.WriteString("    Type                   : Wireless LAN\r\n")
	fmt.Fprintf(&b, "    Name                   : %s\r\n", name)
	b.WriteString("\r\nConnectivity settings\r\n---------------------\r\n")
	b.WriteString("    Number of SSIDs        : 1\r\n")
	fmt.Fprintf(&b, "    SSID name              : \"%s\"\r\n", name)
	b.WriteString("\r\nSecurity settings\r\n-----------------\r\n")
	if key == "" {
		b.WriteString("    Authentication         : Open\r\n")
		b.WriteString("    Cipher                 : None\r\n")
		b.WriteString("    Security key           : Absent\r\n")
	} else {
		b.WriteString("    Authentication         : WPA2-Personal\r\n")
		b.WriteString("    Cipher                 : CCMP\r\n")
		b.WriteString("    Security key           : Present\r\n")
		fmt.Fprintf(&b, "    Key Content            : %s\r\n", key)
	}
	b.WriteString("\r\nCost settings\r\n-------------\r\n")
	b.WriteString("    Cost                   : Unrestricted\r\n")
	return b.String()
}
