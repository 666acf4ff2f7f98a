package explorer

import (
	"context"
	"errors"
	"fmt"

	model "github.com/lensvault/lensvault/models"
	"github.com/lensvault/lensvault/pkg/filesystem"
	"github.com/lensvault/lensvault/pkg/filesystem/fsctx"
	"github.com/lensvault/lensvault/pkg/hashid"
	"github.com/lensvault/lensvault/pkg/serializer"

	"github.com/gin-gonic/gin"
)

// UploadService 调色板上传服务
type UploadService struct {
	UserID string `form:"user_id" binding:"required"`
}

// Upload 将一批上传的文件存入用户的调色板。任何一个文件未通过准入
// 校验或保存失败，整批中止
func (service *UploadService) Upload(c *gin.Context) serializer.Response {
	user, errResp := resolveUser(service.UserID)
	if errResp != nil {
		return *errResp
	}

	fs, err := filesystem.NewFileSystem(user)
	if err != nil {
		return serializer.Err(serializer.CodeInternalSetting, "Failed to initialize filesystem", err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return serializer.ParamErr("Failed to parse multipart form", err)
	}
	files := form.File["files"]

	ctx := context.Background()
	if err := fs.ValidateBatchCount(ctx, len(files)); err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	// 准入校验先于任何写入，保证整批要么全部开始存储，要么原样拒绝。
	// 校验错误自带未通过的文件名
	for _, fileHeader := range files {
		if err := fs.ValidateFile(ctx, fileHeader.Filename, uint64(fileHeader.Size)); err != nil {
			return serializer.Err(serializer.CodeNotSet, err.Error(), err)
		}
	}

	uploaded := make([]model.File, 0, len(files))
	for _, fileHeader := range files {
		src, err := fileHeader.Open()
		if err != nil {
			return serializer.Err(serializer.CodeIOFailed, "Failed to read uploaded file", err)
		}

		file, err := fs.Upload(ctx, &fsctx.FileStream{
			File:     src,
			Size:     uint64(fileHeader.Size),
			Name:     fileHeader.Filename,
			MIMEType: fileHeader.Header.Get("Content-Type"),
		})
		src.Close()
		if err != nil {
			// 重建错误信息以带上文件名，serializer.Err 会以 AppError
			// 自身的消息覆盖传入的消息
			var appErr serializer.AppError
			if errors.As(err, &appErr) {
				return serializer.Err(appErr.Code,
					fmt.Sprintf("Upload of %q failed: %s", fileHeader.Filename, appErr.Msg), appErr.RawError)
			}
			return serializer.Err(serializer.CodeUploadFailed,
				fmt.Sprintf("Upload of %q failed", fileHeader.Filename), err)
		}

		uploaded = append(uploaded, *file)
	}

	return serializer.BuildAssetListResponse(uploaded)
}

// resolveUser 解码用户HashID并验证用户存在
func resolveUser(hashedID string) (*model.User, *serializer.Response) {
	uid, err := hashid.DecodeHashID(hashedID, hashid.UserID)
	if err != nil {
		resp := serializer.Err(serializer.CodeUserNotFound, "Unknown user", err)
		return nil, &resp
	}

	user, err := model.GetUserByID(uid)
	if err != nil {
		resp := serializer.Err(serializer.CodeUserNotFound, "Unknown user", err)
		return nil, &resp
	}

	return &user, nil
}
