package makernote

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/mmoretti/exifcore/internal/value"
)

// AppleParser decodes the iOS MakerNote: a TIFF-like IFD embedded at byte 14
// of the body, with no magic number or IFD-offset pointer of its own, and
// internal offsets relative to byte 0 of the MakerNote (not the outer TIFF).
type AppleParser struct{}

const appleSignature = "Apple iOS\x00\x00\x01"

func (p *AppleParser) Matches(make string) bool {
	return strings.EqualFold(strings.TrimSpace(make), "Apple")
}

func (p *AppleParser) Parse(raw []byte, fileOffsetOfBody int, _ EncryptionKeys) (Result, error) {
	const minLen = 22
	if len(raw) < minLen {
		return Result{}, errTooShort("Apple", len(raw), minLen)
	}
	if string(raw[0:12]) != appleSignature {
		return Result{}, fmt.Errorf("apple makernote prefix mismatch, got %q", raw[0:12])
	}

	var endian binary.ByteOrder
	switch {
	case raw[12] == 0x49 && raw[13] == 0x49:
		endian = binary.LittleEndian
	case raw[12] == 0x4D && raw[13] == 0x4D:
		endian = binary.BigEndian
	default:
		return Result{}, fmt.Errorf("apple makernote: unrecognized endian marker")
	}

	const ifdStart = 14
	if ifdStart+2 > len(raw) {
		return Result{}, fmt.Errorf("apple makernote: IFD position out of bounds")
	}

	e := &extractor{Data: raw, InternalBase: 0, Endian: endian}
	entryCount := int(endian.Uint16(raw[ifdStart : ifdStart+2]))
	entriesStart := ifdStart + 2
	if entriesStart+entryCount*12 > len(raw) {
		entryCount = (len(raw) - entriesStart) / 12
	}

	fields := map[string]value.Value{}
	for j := 0; j < entryCount; j++ {
		entryOffset := entriesStart + j*12
		en := parseEntry(raw, entryOffset, endian)

		switch en.Tag {
		case 0x0001:
			fields["MakerNotes:MakerNoteVersion"] = value.NewI32(int32(e.getUint32(entryOffset)))
		case 0x0004:
			fields["MakerNotes:AEStable"] = value.NewU8(boolToU8(e.getUint32(entryOffset) == 1))
		case 0x0005:
			fields["MakerNotes:AETarget"] = value.NewU32(e.getUint32(entryOffset))
		case 0x0006:
			fields["MakerNotes:AEAverage"] = value.NewU32(e.getUint32(entryOffset))
		case 0x0007:
			fields["MakerNotes:AFStable"] = value.NewU8(boolToU8(e.getUint32(entryOffset) == 1))
		case 0x0008:
			x := e.getRationalAt(en, 0, true)
			y := e.getRationalAt(en, 8, true)
			z := e.getRationalAt(en, 16, true)
			fields["MakerNotes:AccelerationVector"] = value.NewArrayF64([]float64{x, y, z})
		case 0x000a:
			fields["MakerNotes:HDRImageType"] = value.NewString(hdrImageType(e.getUint32(entryOffset)))
		case 0x000b:
			fields["MakerNotes:BurstUUID"] = value.NewString(e.getString(en, entryOffset))
		case 0x000c:
			p1 := e.getRationalAt(en, 0, true)
			p2 := e.getRationalAt(en, 8, true)
			fields["MakerNotes:FocusDistanceRange"] = value.NewString(fmt.Sprintf("%.2f - %.2f m", p1, p2))
		case 0x000f:
			fields["MakerNotes:OISMode"] = value.NewI32(int32(e.getUint32(entryOffset)))
		case 0x0011:
			fields["MakerNotes:ContentIdentifier"] = value.NewString(e.getString(en, entryOffset))
		case 0x0014:
			fields["MakerNotes:ImageCaptureType"] = value.NewString(imageCaptureType(int32(e.getUint32(entryOffset))))
		case 0x0015:
			fields["MakerNotes:ImageUniqueID"] = value.NewString(e.getString(en, entryOffset))
		case 0x0019:
			fields["MakerNotes:ImageProcessingFlags"] = value.NewI32(int32(e.getUint32(entryOffset)))
		case 0x001a:
			fields["MakerNotes:QualityHint"] = value.NewString(e.getString(en, entryOffset))
		case 0x001d:
			fields["MakerNotes:LuminanceNoiseAmplitude"] = value.NewF64(e.getRationalAt(en, 0, true))
		case 0x001f:
			fields["MakerNotes:PhotosAppFeatureFlags"] = value.NewI32(int32(e.getUint32(entryOffset)))
		case 0x0020:
			fields["MakerNotes:ImageCaptureRequestID"] = value.NewString(e.getString(en, entryOffset))
		case 0x0021:
			fields["MakerNotes:HDRHeadroom"] = value.NewF64(e.getRationalAt(en, 0, true))
		case 0x0023:
			values := e.getUint32Array(en, 2)
			if len(values) != 2 {
				continue
			}
			focusDistance := int32(values[0])
			packedValue := int32(values[1])
			highBits := (packedValue >> 28) & 0xf
			lowBits := packedValue & 0xfffffff
			fields["MakerNotes:AFPerformance"] = value.NewString(fmt.Sprintf("%d %d %d", focusDistance, highBits, lowBits))
		case 0x0025:
			fields["MakerNotes:SceneFlags"] = value.NewI32(int32(e.getUint32(entryOffset)))
		case 0x0027:
			fields["MakerNotes:SignalToNoiseRatio"] = value.NewF64(e.getRationalAt(en, 0, true))
		case 0x002b:
			fields["MakerNotes:PhotoIdentifier"] = value.NewString(e.getString(en, entryOffset))
		case 0x002d:
			fields["MakerNotes:ColorTemperature"] = value.NewI32(int32(e.getUint32(entryOffset)))
		case 0x002e:
			fields["MakerNotes:CameraType"] = value.NewString(cameraType(int32(e.getUint32(entryOffset))))
		case 0x002f:
			fields["MakerNotes:FocusPosition"] = value.NewI32(int32(e.getUint32(entryOffset)))
		case 0x0030:
			fields["MakerNotes:HDRGain"] = value.NewF64(e.getRationalAt(en, 0, true))
		case 0x0038:
			fields["MakerNotes:AFMeasuredDepth"] = value.NewI32(int32(e.getUint32(entryOffset)))
		case 0x003d:
			fields["MakerNotes:AFConfidence"] = value.NewI32(int32(e.getUint32(entryOffset)))
		}
	}

	return Result{Manufacturer: "Apple", Fields: fields}, nil
}

func boolToU8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func hdrImageType(raw uint32) string {
	switch raw {
	case 3:
		return "HDR Image"
	case 4:
		return "Original Image"
	default:
		return "Unknown"
	}
}

func imageCaptureType(raw int32) string {
	switch raw {
	case 1:
		return "ProRAW"
	case 2:
		return "Portrait"
	case 10:
		return "Photo"
	case 11:
		return "Manual Focus"
	case 12:
		return "Scene"
	default:
		return "Unknown Value"
	}
}

func cameraType(raw int32) string {
	switch raw {
	case 0:
		return "Back Wide Angle"
	case 1:
		return "Back Normal"
	case 6:
		return "Front"
	default:
		return "Unknown"
	}
}
