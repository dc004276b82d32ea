package grpc

import (
	chatpb "github.com/mizukilab/gochat/internal/proto"
	"github.com/mizukilab/gochat/internal/server/models"
)

// User-facing error strings. The API predates this server, so the
// wording is fixed; clients match on it.
const (
	msgInvalidToken            = "認証エラー: 無効なトークン"
	msgBadCredentials          = "ユーザー名またはパスワードが正しくありません"
	msgUserDeactivated         = "このユーザーは無効化されています"
	msgUsernameTaken           = "このユーザー名は既に使用されています"
	msgChannelNotFound         = "チャンネルが見つかりません"
	msgNoChannelAccess         = "このチャンネルへのアクセス権がありません"
	msgCreatorOnlyUpdate       = "チャンネルの作成者のみが更新できます"
	msgCreatorOnlyDelete       = "チャンネルの作成者のみが削除できます"
	msgCreatorOnlyAddMember    = "チャンネルの作成者のみがメンバーを追加できます"
	msgCreatorOnlyRemoveMember = "チャンネルの作成者のみがメンバーを削除できます"
	msgCreatorNotRemovable     = "チャンネルの作成者は削除できません"
	msgMessageNotFound         = "メッセージが見つかりません"
	msgOwnMessageOnly          = "自分のメッセージのみ削除できます"
	msgUserNotFound            = "ユーザーが見つかりません"
	msgOwnProfileOnly          = "自分のプロフィールのみ更新できます"
	msgOwnAccountOnlyDelete    = "自分のアカウントのみ削除できます"
	msgOwnAccountOnlyChange    = "自分のアカウントのみ変更できます"
)

// Timestamps cross the wire as Unix milliseconds.

func userToPb(u *models.User) *chatpb.User {
	if u == nil {
		return nil
	}
	return &chatpb.User{
		Id:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt.UnixMilli(),
		IsActive:    u.IsActive,
	}
}

func channelToPb(c *models.Channel) *chatpb.Channel {
	if c == nil {
		return nil
	}
	return &chatpb.Channel{
		Id:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt.UnixMilli(),
		CreatedBy:   c.CreatedBy,
		MemberIds:   append([]string(nil), c.MemberIDs...),
		IsPrivate:   c.IsPrivate,
	}
}

func messageToPb(m *models.Message) *chatpb.Message {
	if m == nil {
		return nil
	}
	return &chatpb.Message{
		Id:        m.ID,
		ChannelId: m.ChannelID,
		UserId:    m.UserID,
		Username:  m.Username,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.UnixMilli(),
		UpdatedAt: m.UpdatedAt.UnixMilli(),
	}
}
