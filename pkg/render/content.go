package render

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
)

// ReadTextFile reads a whole file and decodes it as UTF-8 text.
// Failures are returned inside the result rather than as an error so the
// caller can keep traversing.
func ReadTextFile(filePath string, logger *zap.Logger) ReadResult {
	logger.Debug("Reading file content", zap.String("filePath", filePath))

	file, err := os.Open(filePath)
	if err != nil {
		logger.Warn("Failed to open file", zap.String("filePath", filePath), zap.Error(err))
		return ReadResult{Err: err}
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Warn("Failed to close file", zap.String("filePath", filePath), zap.Error(closeErr))
		}
	}()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		logger.Warn("Failed to read file", zap.String("filePath", filePath), zap.Error(err))
		return ReadResult{Err: err}
	}

	if offset := invalidUTF8Offset(fileBytes); offset >= 0 {
		err := fmt.Errorf("invalid UTF-8 in %s at byte %d", filePath, offset)
		logger.Warn("File is not valid UTF-8 text", zap.String("filePath", filePath), zap.Int("offset", offset))
		return ReadResult{Err: err}
	}

	logger.Debug("Successfully read file content",
		zap.String("filePath", filePath),
		zap.Int("contentSizeBytes", len(fileBytes)))

	return ReadResult{Content: string(fileBytes)}
}

// invalidUTF8Offset returns the byte offset of the first invalid UTF-8
// sequence in data, or -1 when data is valid.
func invalidUTF8Offset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for offset := 0; offset < len(data); {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size <= 1 {
			return offset
		}
		offset += size
	}
	return -1
}
