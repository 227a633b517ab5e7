package jwtutil

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/goccy/go-json"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const segmentCount = 3

var errNotObject = errors.New("payload is not a JSON object")

// Decode parses a compact serialised JWT. Only the unsigned form is accepted:
// the signature segment must be empty. No signature verification is done.
func Decode(raw string) (*Token, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, formatError("Token cannot be null or empty", nil)
	}

	parts := strings.Split(raw, ".")
	if len(parts) != segmentCount {
		return nil, formatError("Token has invalid format. Expected 3 segments", nil)
	}

	if parts[2] != "" {
		return nil, formatError("Token should not be signed", nil)
	}

	headerJSON, err := decodeSegment(parts[0])
	if err != nil {
		return nil, formatError("Unable to decode the header as Base64Url encoded string", err)
	}

	payloadJSON, err := decodeSegment(parts[1])
	if err != nil {
		return nil, formatError("Unable to decode the payload as Base64Url encoded string", err)
	}

	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, formatError("Unable to decode the header as JSON", err)
	}

	list, err := flattenClaims(payloadJSON)
	if err != nil {
		return nil, formatError("Unable to decode the payload as JSON", err)
	}

	tok := NewToken(header, list...)
	tok.issuedAt, tok.expiry, tok.notBefore = registeredWindow(payloadJSON)
	return tok, nil
}

// StripBearer removes a case-insensitive "Bearer " prefix from an
// Authorization header value.
func StripBearer(authorization string) string {
	const prefix = "bearer "
	if len(authorization) >= len(prefix) && strings.EqualFold(authorization[:len(prefix)], prefix) {
		return authorization[len(prefix):]
	}
	return authorization
}

func decodeSegment(seg string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(seg, "="))
}

// flattenClaims walks the payload object in document order. String values are
// unescaped, arrays expand into one claim per element and objects keep their
// raw JSON text so nested claims can be parsed by the validators.
func flattenClaims(payload []byte) ([]Claim, error) {
	if !json.Valid(payload) {
		return nil, errors.New("payload is not valid JSON")
	}

	var list []Claim
	err := jsonparser.ObjectEach(payload, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		name := string(key)
		if dataType != jsonparser.Array {
			v, err := claimValue(value, dataType)
			if err != nil {
				return err
			}
			list = append(list, Claim{Name: name, Value: v})
			return nil
		}

		var itemErr error
		_, err := jsonparser.ArrayEach(value, func(item []byte, itemType jsonparser.ValueType, _ int, _ error) {
			if itemErr != nil {
				return
			}
			v, err := claimValue(item, itemType)
			if err != nil {
				itemErr = err
				return
			}
			list = append(list, Claim{Name: name, Value: v})
		})
		if err != nil {
			return err
		}
		return itemErr
	})
	if err != nil {
		if errors.Is(err, jsonparser.MalformedObjectError) {
			return nil, errNotObject
		}
		return nil, err
	}
	return list, nil
}

func claimValue(value []byte, dataType jsonparser.ValueType) (string, error) {
	switch dataType {
	case jsonparser.String:
		return jsonparser.ParseString(value)
	case jsonparser.Null:
		return "", nil
	default:
		return string(value), nil
	}
}

// registeredWindow reads iat, exp and nbf through jwx. A payload jwx rejects
// (for example a non-numeric iat) leaves the window zero; the lifetime check
// reports those claims from the raw claim values instead.
func registeredWindow(payload []byte) (iat, exp, nbf time.Time) {
	tok := jwt.New()
	if err := json.Unmarshal(payload, tok); err != nil {
		return
	}
	return tok.IssuedAt(), tok.Expiration(), tok.NotBefore()
}
