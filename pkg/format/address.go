package format

// ShortenAddress keeps the first 10 and last 4 characters of an address.
// Addresses too short to shorten are returned unchanged.
func ShortenAddress(addr string) string {
	if len(addr) <= 14 {
		return addr
	}
	return addr[:10] + "..." + addr[len(addr)-4:]
}
