package serializer

import (
	"time"

	model "github.com/lensvault/lensvault/models"
	"github.com/lensvault/lensvault/pkg/hashid"
)

// Asset 文件资产序列化器
type Asset struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Extension     string     `json:"extension"`
	Description   string     `json:"description"`
	Size          uint64     `json:"size"`
	Palette       bool       `json:"palette"`
	ProjectID     string     `json:"project_id,omitempty"`
	ThumbnailPath string     `json:"thumbnail_path"`
	ViewPath      string     `json:"view_path"`
	CreatedAt     time.Time  `json:"created_at"`
	TakenAt       *time.Time `json:"taken_at,omitempty"`
	PixelWidth    int        `json:"pixel_width"`
	PixelHeight   int        `json:"pixel_height"`
	CameraMake    *string    `json:"camera_make,omitempty"`
	CameraModel   *string    `json:"camera_model,omitempty"`
	Copyright     *string    `json:"copyright,omitempty"`
	FocalLength   *int       `json:"focal_length,omitempty"`
	Aperture      *float64   `json:"aperture,omitempty"`
	GPSLat        *float64   `json:"gps_lat,omitempty"`
	GPSLng        *float64   `json:"gps_lng,omitempty"`
	GPSAlt        *float64   `json:"gps_alt,omitempty"`
	Tags          []string   `json:"tags"`
	Metadata      []assetKV  `json:"metadata,omitempty"`
}

type assetKV struct {
	Key   string      `json:"key"`
	Type  int         `json:"type"`
	Value interface{} `json:"value"`
}

func buildAsset(file model.File) Asset {
	asset := Asset{
		ID:            hashid.HashID(file.ID, hashid.FileID),
		Name:          file.Name,
		Extension:     file.Extension,
		Description:   file.Description,
		Size:          file.Size,
		Palette:       file.Palette,
		ThumbnailPath: file.ThumbnailPath,
		ViewPath:      file.ViewPath,
		CreatedAt:     file.CreatedAt,
		TakenAt:       file.DateTimeOriginal,
		PixelWidth:    file.PixelWidth,
		PixelHeight:   file.PixelHeight,
		CameraMake:    file.CameraMake,
		CameraModel:   file.CameraModel,
		Copyright:     file.Copyright,
		FocalLength:   file.FocalLength,
		Aperture:      file.Aperture,
		GPSLat:        file.GPSLat,
		GPSLng:        file.GPSLng,
		GPSAlt:        file.GPSAlt,
		Tags:          make([]string, 0, len(file.Tags)),
	}
	if file.ProjectID != nil {
		asset.ProjectID = hashid.HashID(*file.ProjectID, hashid.ProjectID)
	}
	for _, tag := range file.Tags {
		asset.Tags = append(asset.Tags, tag.Value)
	}
	for _, kv := range file.Metadata {
		item := assetKV{Key: kv.Key, Type: kv.Type}
		if kv.Type == model.MetadataTypeInteger {
			item.Value = kv.IValue
		} else {
			item.Value = kv.SValue
		}
		asset.Metadata = append(asset.Metadata, item)
	}
	return asset
}

// BuildAssetResponse 构建单个文件资产的响应
func BuildAssetResponse(file model.File) Response {
	return Response{
		Data: buildAsset(file),
	}
}

// BuildAssetListResponse 构建文件资产列表响应
func BuildAssetListResponse(files []model.File) Response {
	assets := make([]Asset, 0, len(files))
	for _, file := range files {
		assets = append(assets, buildAsset(file))
	}
	return Response{
		Data: map[string]interface{}{
			"assets": assets,
		},
	}
}

// BuildBatchResponse 构建批量提交结果响应
func BuildBatchResponse(inserted []model.File, purged int) Response {
	assets := make([]Asset, 0, len(inserted))
	for _, file := range inserted {
		assets = append(assets, buildAsset(file))
	}
	return Response{
		Data: map[string]interface{}{
			"assets": assets,
			"purged": purged,
		},
	}
}
