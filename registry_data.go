package bindocsis

/*
registry_data.go seeds DefaultRegistry with the TLV metadata spec §4.1
says is "populated from an external data source". The concrete table
below is this module's own DOCSIS/PacketCable data source: it covers
the required basic set, the dependency-table members, one representative
top-level or sub-TLV entry per ValueTag in the closed set of spec §3,
and several DOCSIS-version-gated entries so VersionAllowedTypes and
registry monotonicity have something real to exercise.
*/

// wellKnownOUIs is a small vendor-OUI name table (spec §4.3's "optional
// vendor-name prefix"); a real deployment tool ships the IEEE OUI
// registry in full, this carries the handful relevant to cable/MTA gear
// plus the fixture OUI used by spec §8 scenario 5.
var wellKnownOUIs = map[string]string{
	"00:10:95": "Broadcom Corporation",
	"00:01:5C": "Cadant Inc.",
	"00:0E:5C": "Arris International",
	"00:13:11": "Cisco Systems",
	"00:1A:D1": "Motorola Inc.",
	"00:50:F1": "Cable Television Laboratories Inc.",
}

func lookupOUIVendor(oui [3]byte) (string, bool) {
	key := hexUpper(oui[:3])
	key = key[0:2] + ":" + key[2:4] + ":" + key[4:6]
	name, ok := wellKnownOUIs[key]
	return name, ok
}

/*
DefaultRegistry returns the package's built-in DOCSIS/PacketCable table.
Tests and callers wanting a narrower fixture should build their own
with NewRegistry rather than mutate this one -- it is shared and must
stay immutable.
*/
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Add(1, RegistryEntry{Name: "Downstream Frequency", ValueType: VT(TagFrequency),
		VersionIntroduced: Version10, MaxLength: 4,
		Description: "Center frequency of the downstream channel, in Hz"})
	r.Add(2, RegistryEntry{Name: "Upstream Channel ID", ValueType: VT(TagUint8),
		VersionIntroduced: Version10, MaxLength: 1})
	r.Add(3, RegistryEntry{Name: "Network Access Control", ValueType: VT(TagBoolean),
		VersionIntroduced: Version10, MaxLength: 1})

	r.Add(4, RegistryEntry{Name: "Class of Service", ValueType: VT(TagCompound),
		VersionIntroduced: Version10, MaxLength: Unlimited, SubtlvSchemaID: "cos"})
	r.AddSubTLV(4, 1, RegistryEntry{Name: "Class ID", ValueType: VT(TagUint8), VersionIntroduced: Version10, MaxLength: 1})
	r.AddSubTLV(4, 2, RegistryEntry{Name: "Max Downstream Rate", ValueType: VT(TagBandwidth), VersionIntroduced: Version10, MaxLength: 4})
	r.AddSubTLV(4, 3, RegistryEntry{Name: "Max Upstream Rate", ValueType: VT(TagBandwidth), VersionIntroduced: Version10, MaxLength: 4})
	r.AddSubTLV(4, 4, RegistryEntry{Name: "Upstream Channel Priority", ValueType: VT(TagUint8), VersionIntroduced: Version10, MaxLength: 1})
	r.AddSubTLV(4, 5, RegistryEntry{Name: "Guaranteed Minimum Upstream Rate", ValueType: VT(TagBandwidth), VersionIntroduced: Version10, MaxLength: 4})
	r.AddSubTLV(4, 6, RegistryEntry{Name: "Max Upstream Channel Transmit Burst", ValueType: VT(TagUint16), VersionIntroduced: Version10, MaxLength: 2})

	r.Add(5, RegistryEntry{Name: "Modem Capabilities", ValueType: VT(TagCompound),
		VersionIntroduced: Version10, MaxLength: Unlimited, SubtlvSchemaID: "modemcap"})
	r.AddSubTLV(5, 1, RegistryEntry{Name: "Concatenation Support", ValueType: VT(TagBoolean), VersionIntroduced: Version10, MaxLength: 1})
	r.AddSubTLV(5, 2, RegistryEntry{Name: "DOCSIS Version Number", ValueType: Enum(map[int]string{
		0: "DOCSIS 1.0", 1: "DOCSIS 1.1", 2: "DOCSIS 2.0", 3: "DOCSIS 3.0", 4: "DOCSIS 3.1",
	}, 1), VersionIntroduced: Version10, MaxLength: 1})
	r.AddSubTLV(5, 3, RegistryEntry{Name: "Fragmentation Support", ValueType: VT(TagBoolean), VersionIntroduced: Version11, MaxLength: 1})

	r.Add(6, RegistryEntry{Name: "CM Message Integrity Check", ValueType: VT(TagBinary),
		VersionIntroduced: Version10, MaxLength: 16,
		Description: "Generated by the excluded MIC collaborator; this core only carries the bytes"})
	r.Add(7, RegistryEntry{Name: "CMTS Message Integrity Check", ValueType: VT(TagBinary),
		VersionIntroduced: Version10, MaxLength: 16})

	r.Add(9, RegistryEntry{Name: "Software Upgrade Filename", ValueType: VT(TagString),
		VersionIntroduced: Version10, MaxLength: Unlimited})

	r.Add(10, RegistryEntry{Name: "SNMP Write-Access Control", ValueType: Enum(map[int]string{
		1: "Read-Write", 2: "Read-Only",
	}, 1), VersionIntroduced: Version10, MaxLength: 1})

	r.Add(11, RegistryEntry{Name: "SNMP MIB Object", ValueType: VT(TagASN1DER),
		VersionIntroduced: Version10, MaxLength: Unlimited,
		Description: "DER-encoded SEQUENCE{OID, value} per spec §4.3"})

	r.Add(12, RegistryEntry{Name: "CM IP Address", ValueType: VT(TagIPv4),
		VersionIntroduced: Version10, MaxLength: 4})

	r.Add(14, RegistryEntry{Name: "CPE Ethernet MAC Address", ValueType: VT(TagMACAddress),
		VersionIntroduced: Version10, MaxLength: 6})

	r.Add(17, RegistryEntry{Name: "Baseline Privacy Configuration", ValueType: VT(TagCompound),
		VersionIntroduced: Version10, MaxLength: Unlimited, SubtlvSchemaID: "bpi"})
	r.AddSubTLV(17, 1, RegistryEntry{Name: "Authorize Wait Timeout", ValueType: VT(TagDuration), VersionIntroduced: Version10, MaxLength: 4})
	r.AddSubTLV(17, 2, RegistryEntry{Name: "Reauthorize Wait Timeout", ValueType: VT(TagDuration), VersionIntroduced: Version10, MaxLength: 4})
	r.AddSubTLV(17, 3, RegistryEntry{Name: "Authorization Grace Time", ValueType: VT(TagDuration), VersionIntroduced: Version10, MaxLength: 4})
	r.AddSubTLV(17, 9, RegistryEntry{Name: "Security Association ID", ValueType: VT(TagUint16), VersionIntroduced: Version10, MaxLength: 2})

	r.Add(18, RegistryEntry{Name: "Max Number of CPE", ValueType: VT(TagUint8),
		VersionIntroduced: Version10, MaxLength: 1})

	r.Add(19, RegistryEntry{Name: "TFTP Server Timestamp", ValueType: VT(TagTimestamp),
		VersionIntroduced: Version10, MaxLength: 4})
	r.Add(20, RegistryEntry{Name: "TFTP Server Provisioned Modem Address", ValueType: VT(TagIPv4),
		VersionIntroduced: Version10, MaxLength: 4})

	r.Add(21, RegistryEntry{Name: "IP Address", ValueType: VT(TagIPv4),
		VersionIntroduced: Version10, MaxLength: 4})

	r.Add(24, RegistryEntry{Name: "Upstream Service Flow", ValueType: VT(TagCompound),
		VersionIntroduced: Version11, MaxLength: Unlimited, SubtlvSchemaID: "sf"})
	r.Add(25, RegistryEntry{Name: "Downstream Service Flow", ValueType: VT(TagCompound),
		VersionIntroduced: Version11, MaxLength: Unlimited, SubtlvSchemaID: "sf"})
	r.AddSubTLV(24, 1, RegistryEntry{Name: "Service Flow Reference", ValueType: VT(TagServiceFlowRef), VersionIntroduced: Version11, MaxLength: 2})
	r.AddSubTLV(24, 2, RegistryEntry{Name: "QoS Parameter Set Type", ValueType: VT(TagUint8), VersionIntroduced: Version11, MaxLength: 1})
	r.AddSubTLV(25, 1, RegistryEntry{Name: "Service Flow Reference", ValueType: VT(TagServiceFlowRef), VersionIntroduced: Version11, MaxLength: 2})
	r.AddSubTLV(25, 2, RegistryEntry{Name: "QoS Parameter Set Type", ValueType: VT(TagUint8), VersionIntroduced: Version11, MaxLength: 1})

	r.Add(30, RegistryEntry{Name: "Subscriber Management Control", ValueType: VT(TagUint8),
		VersionIntroduced: Version11, MaxLength: 1,
		Description: "Requires TLV 31 (Subscriber Management CPE IP Table) per the dependency table"})
	r.Add(31, RegistryEntry{Name: "Subscriber Management CPE IP Table", ValueType: VT(TagCompound),
		VersionIntroduced: Version11, MaxLength: Unlimited, SubtlvSchemaID: "submgmt"})
	r.AddSubTLV(31, 1, RegistryEntry{Name: "CPE IP Address", ValueType: VT(TagIPv4), VersionIntroduced: Version11, MaxLength: 4})

	r.Add(38, RegistryEntry{Name: "Software Upgrade Server", ValueType: VT(TagIPv4),
		VersionIntroduced: Version11, MaxLength: 4,
		Description: "Requires TLV 39 (Shared Secret) per the dependency table"})
	r.Add(39, RegistryEntry{Name: "Shared Secret", ValueType: VT(TagBinary),
		VersionIntroduced: Version11, MaxLength: Unlimited})

	r.Add(40, RegistryEntry{Name: "SNMPv3 Kickstart", ValueType: VT(TagCompound),
		VersionIntroduced: Version20, MaxLength: Unlimited, SubtlvSchemaID: "snmpv3"})
	r.AddSubTLV(40, 1, RegistryEntry{Name: "SNMPv3 Security Name", ValueType: VT(TagString), VersionIntroduced: Version20, MaxLength: 32})
	r.AddSubTLV(40, 2, RegistryEntry{Name: "SNMPv3 Manager Public Number", ValueType: VT(TagBinary), VersionIntroduced: Version20, MaxLength: Unlimited})

	r.Add(43, RegistryEntry{Name: "Vendor Specific Information", ValueType: VT(TagVendor),
		VersionIntroduced: Version10, MaxLength: Unlimited, SubtlvSchemaID: "vendor"})
	r.AddSubTLV(43, 8, RegistryEntry{Name: "Vendor OUI", ValueType: VT(TagVendorOUI), VersionIntroduced: Version10, MaxLength: 3})

	r.Add(45, RegistryEntry{Name: "MIB Object Identifier", ValueType: VT(TagOID),
		VersionIntroduced: Version20, MaxLength: Unlimited})
	r.Add(46, RegistryEntry{Name: "SNMP Object Identifier", ValueType: VT(TagSNMPOID),
		VersionIntroduced: Version20, MaxLength: Unlimited})

	r.Add(51, RegistryEntry{Name: "IP Lease Time", ValueType: VT(TagDuration),
		VersionIntroduced: Version20, MaxLength: 4})
	r.Add(52, RegistryEntry{Name: "Downstream Channel Utilization", ValueType: VT(TagPercentage),
		VersionIntroduced: Version20, MaxLength: 1})
	r.Add(53, RegistryEntry{Name: "Downstream Transmit Power", ValueType: VT(TagPowerQuarterDB),
		VersionIntroduced: Version20, MaxLength: 1})

	r.Add(56, RegistryEntry{Name: "Security Association Type", ValueType: Enum(map[int]string{
		1: "Primary", 2: "Static", 3: "Dynamic",
	}, 2), VersionIntroduced: Version20, MaxLength: 2})

	r.Add(60, RegistryEntry{Name: "MTA Configuration File Version", ValueType: VT(TagUint32),
		VersionIntroduced: Version20, MaxLength: 4})
	r.Add(61, RegistryEntry{Name: "MTA DHCP Server", ValueType: VT(TagIPv4),
		VersionIntroduced: Version20, MaxLength: 4})
	r.Add(64, RegistryEntry{Name: "MTA Device Certificate", ValueType: VT(TagCertificate),
		VersionIntroduced: Version30, MaxLength: Unlimited})
	r.Add(65, RegistryEntry{Name: "Kerberos Realm", ValueType: VT(TagString),
		VersionIntroduced: Version30, MaxLength: Unlimited})

	r.Add(67, RegistryEntry{Name: "Downstream Channel List", ValueType: VT(TagCompound),
		VersionIntroduced: Version30, MaxLength: Unlimited, SubtlvSchemaID: "chanlist"})
	r.AddSubTLV(67, 1, RegistryEntry{Name: "Channel ID", ValueType: VT(TagUint8), VersionIntroduced: Version30, MaxLength: 1})
	r.AddSubTLV(67, 2, RegistryEntry{Name: "Channel Frequency", ValueType: VT(TagFrequency), VersionIntroduced: Version30, MaxLength: 4})

	r.Add(85, RegistryEntry{Name: "CM IPv6 Address", ValueType: VT(TagIPv6),
		VersionIntroduced: Version31, MaxLength: 16})

	r.Add(255, RegistryEntry{Name: "End-of-Data Marker", ValueType: VT(TagMarker),
		VersionIntroduced: Version10, MaxLength: 0})

	return r
}
