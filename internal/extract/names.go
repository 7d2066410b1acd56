package extract

// tagNames maps the common IFD0/EXIF tag IDs to their exiftool-compatible
// names. This is a hand-grounded subset (the tags the teacher already
// named in its dto.go constants) rather than the full reference tag table,
// which is a data-driven concern better served by internal/tagstore's
// generated table once one exists; anything absent here is still stored,
// just under its numeric tag as "0xNNNN".
var tagNames = map[uint16]string{
	0x010e: "ImageDescription",
	0x010f: "Make",
	0x0110: "Model",
	0x0112: "Orientation",
	0x011a: "XResolution",
	0x011b: "YResolution",
	0x0128: "ResolutionUnit",
	0x0131: "Software",
	0x0132: "ModifyDate",
	0x013b: "Artist",
	0x0211: "YCbCrCoefficients",
	0x0213: "YCbCrPositioning",
	0x8298: "Copyright",
	0x8769: "ExifOffset",

	0x829a: "ExposureTime",
	0x829d: "FNumber",
	0x8822: "ExposureProgram",
	0x8827: "ISO",
	0x9000: "ExifVersion",
	0x9003: "DateTimeOriginal",
	0x9004: "CreateDate",
	0x9010: "OffsetTime",
	0x9011: "OffsetTimeOriginal",
	0x9012: "OffsetTimeDigitized",
	0x9101: "ComponentsConfiguration",
	0x9201: "ShutterSpeedValue",
	0x9202: "ApertureValue",
	0x9204: "ExposureCompensation",
	0x9205: "MaxApertureValue",
	0x9207: "MeteringMode",
	0x9208: "LightSource",
	0x9209: "Flash",
	0x920a: "FocalLength",
	0x927c: "MakerNote",
	0x9286: "UserComment",
	0x9290: "SubSecTime",
	0x9291: "SubSecTimeOriginal",
	0x9292: "SubSecTimeDigitized",
	0xa000: "FlashpixVersion",
	0xa001: "ColorSpace",
	0xa002: "ExifImageWidth",
	0xa003: "ExifImageHeight",
	0xa004: "RelatedSoundFile",
	0xa300: "FileSource",
	0xa301: "SceneType",
	0xa403: "WhiteBalance",
	0xa404: "DigitalZoomRatio",
	0xa406: "SceneCaptureType",
	0xa408: "Contrast",
	0xa409: "Saturation",
	0xa40a: "Sharpness",
	0xa40c: "SubjectDistanceRange",
	0xa420: "ImageUniqueID",
	0xa431: "BodySerialNumber",
	0xa432: "LensInfo",
	0xa433: "LensMake",
	0xa434: "LensModel",
	0xa435: "LensSerialNumber",
	0xa460: "CompositeImage",
	0xa461: "CompositeImageCount",
}

// gpsTagNames mirrors the GPS sub-IFD's own tag space (it restarts at 0).
var gpsTagNames = map[uint16]string{
	0x00: "GPSVersionID",
	0x01: "GPSLatitudeRef",
	0x02: "GPSLatitude",
	0x03: "GPSLongitudeRef",
	0x04: "GPSLongitude",
	0x05: "GPSAltitudeRef",
	0x06: "GPSAltitude",
	0x07: "GPSTimeStamp",
	0x0c: "GPSSpeedRef",
	0x0d: "GPSSpeed",
	0x10: "GPSImgDirectionRef",
	0x11: "GPSImgDirection",
	0x12: "GPSMapDatum",
	0x1b: "GPSProcessingMethod",
	0x1d: "GPSDateStamp",
	0x1e: "GPSDifferential",
}

func tagName(tag uint16) (string, bool) {
	n, ok := tagNames[tag]
	return n, ok
}

func gpsTagName(tag uint16) (string, bool) {
	n, ok := gpsTagNames[tag]
	return n, ok
}
