package hashid

import (
	"testing"

	"github.com/lensvault/lensvault/pkg/conf"
	"github.com/stretchr/testify/assert"
)

func TestHashEncode(t *testing.T) {
	asserts := assert.New(t)

	{
		conf.SystemConfig.HashIDSalt = ""
		res, err := HashEncode([]int{1, 2, 3})
		asserts.NoError(err)
		asserts.NotEmpty(res)
	}

	{
		conf.SystemConfig.HashIDSalt = "233"
		res, err := HashEncode([]int{1, 2, 3})
		asserts.NoError(err)
		asserts.NotEmpty(res)
	}
}

func TestHashID(t *testing.T) {
	asserts := assert.New(t)
	conf.SystemConfig.HashIDSalt = "test salt"

	res := HashID(1, FileID)
	asserts.NotEmpty(res)

	id, err := DecodeHashID(res, FileID)
	asserts.NoError(err)
	asserts.EqualValues(1, id)

	// 类型不符
	_, err = DecodeHashID(res, ProjectID)
	asserts.Error(err)

	// 无法解码
	_, err = DecodeHashID("233", FileID)
	asserts.Error(err)

	// 空值
	_, err = DecodeHashID("", FileID)
	asserts.Error(err)
}
