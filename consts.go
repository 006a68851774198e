package pe

const (
	ImageDOSSignature   = 0x5A4D // MZ
	ImageDOSZMSignature = 0x4D5A // ZM
)

const ImageNTHeaderSignature = 0x00004550

// Optional header magic values.
const (
	ImageNtOptionalHdr32Magic = 0x10b
	ImageNtOptionalHdr64Magic = 0x20b
)

// Record sizes as laid out on disk.
const (
	DOSHeaderSize        = 64
	FileHeaderSize       = 20
	DataDirectorySize    = 8
	OptionalHeader32Size = 224
	OptionalHeader64Size = 240
	SectionHeaderSize    = 40

	ntSignatureSize     = 4
	NtHeader32Size      = ntSignatureSize + FileHeaderSize + OptionalHeader32Size
	NtHeader64Size      = ntSignatureSize + FileHeaderSize + OptionalHeader64Size
	optionalMagicOffset = ntSignatureSize + FileHeaderSize
)

const ImageNumberOfDirectoryEntries = 16

// IMAGE_DIRECTORY_ENTRY constants
const (
	ImageDirectoryEntryExport        = 0
	ImageDirectoryEntryImport        = 1
	ImageDirectoryEntryResource      = 2
	ImageDirectoryEntryException     = 3
	ImageDirectoryEntrySecurity      = 4
	ImageDirectoryEntryBaseReLoc     = 5
	ImageDirectoryEntryDebug         = 6
	ImageDirectoryEntryArchitecture  = 7
	ImageDirectoryEntryGlobalPtr     = 8
	ImageDirectoryEntryTls           = 9
	ImageDirectoryEntryLoadConfig    = 10
	ImageDirectoryEntryBoundImport   = 11
	ImageDirectoryEntryIat           = 12
	ImageDirectoryEntryDelayImport   = 13
	ImageDirectoryEntryComDescriptor = 14
)

var directoryNames = [ImageNumberOfDirectoryEntries]string{
	ImageDirectoryEntryExport:        "Export",
	ImageDirectoryEntryImport:        "Import",
	ImageDirectoryEntryResource:      "Resource",
	ImageDirectoryEntryException:     "Exception",
	ImageDirectoryEntrySecurity:      "Security",
	ImageDirectoryEntryBaseReLoc:     "BaseReloc",
	ImageDirectoryEntryDebug:         "Debug",
	ImageDirectoryEntryArchitecture:  "Architecture",
	ImageDirectoryEntryGlobalPtr:     "GlobalPtr",
	ImageDirectoryEntryTls:           "TLS",
	ImageDirectoryEntryLoadConfig:    "LoadConfig",
	ImageDirectoryEntryBoundImport:   "BoundImport",
	ImageDirectoryEntryIat:           "IAT",
	ImageDirectoryEntryDelayImport:   "DelayImport",
	ImageDirectoryEntryComDescriptor: "COMDescriptor",
	15:                               "Reserved",
}

// DirectoryName returns the conventional name of data directory i.
func DirectoryName(i int) string {
	if i < 0 || i >= len(directoryNames) {
		return "Unknown"
	}
	return directoryNames[i]
}

const (
	ImageScnMemExecute = 0x20000000
	ImageScnMemRead    = 0x40000000
	ImageScnMemWrite   = 0x80000000
)

// IMAGE_FILE_MACHINE constants
const (
	ImageFileMachineUnknown = 0x0
	ImageFileMachineI386    = 0x14c
	ImageFileMachineArm     = 0x1c0
	ImageFileMachineArmNT   = 0x1c4
	ImageFileMachineIA64    = 0x200
	ImageFileMachineAmd64   = 0x8664
	ImageFileMachineArm64   = 0xaa64
	ImageFileMachineRiscV64 = 0x5064
)

// MachineName returns a short name for a FileHeader.Machine value.
func MachineName(machine uint16) string {
	switch machine {
	case ImageFileMachineUnknown:
		return "unknown"
	case ImageFileMachineI386:
		return "i386"
	case ImageFileMachineArm:
		return "arm"
	case ImageFileMachineArmNT:
		return "armnt"
	case ImageFileMachineIA64:
		return "ia64"
	case ImageFileMachineAmd64:
		return "amd64"
	case ImageFileMachineArm64:
		return "arm64"
	case ImageFileMachineRiscV64:
		return "riscv64"
	}
	return "unknown"
}
