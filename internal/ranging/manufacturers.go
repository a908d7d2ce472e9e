package ranging

// Bluetooth SIG company IDs of tag and module makers likely to turn up as
// ranging beacons.
// See: https://www.bluetooth.com/specifications/assigned-numbers/
var companyNames = map[uint16]string{
	0x004C: "Apple",
	0x0006: "Microsoft",
	0x00E0: "Google",
	0x0075: "Samsung",
	0x038F: "Garmin",
	0x02FF: "Tile",
	0x0059: "Nordic",
	0x000D: "Texas Inst.",
	0x0499: "Ruuvi",
	0x015D: "Espressif",
	0x000F: "Broadcom",
	0x000A: "Qualcomm",
	0x0822: "Tuya/Govee",
}

// LookupManufacturer returns the company name for a SIG company ID, or "".
func LookupManufacturer(companyID uint16) string {
	return companyNames[companyID]
}

// fallbackName names an unnamed advertiser by maker and the last two
// octets of its address, e.g. "Ruuvi EE:FF".
func fallbackName(companyID uint16, addr string) string {
	mfr := LookupManufacturer(companyID)
	if mfr == "" || len(addr) < 5 {
		return ""
	}
	return mfr + " " + addr[len(addr)-5:]
}
